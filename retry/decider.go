// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/metacat/reqq/request"
	"github.com/metacat/reqq/transient"
)

// A Decider decides whether a failed attempt should be retried.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as deciders. DeciderFuncs compose with And and Or.
type DeciderFunc func(e *request.Execution) bool

// TransientErr retries when the attempt error is transient according
// to transient.Categorize. It never retries a received response, and
// never retries a cancelled attempt.
var TransientErr DeciderFunc = transientErr

// Decide calls f(e).
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And returns a decider that is true when both f and g are. g is not
// evaluated if f is false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or returns a decider that is true when either f or g is. g is not
// evaluated if f is true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times allows up to n retries.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before allows retries until d has elapsed since the execution
// started.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode retries when the attempt received a response with one of
// the listed status codes.
func StatusCode(ss ...int) DeciderFunc {
	ss2 := make([]int, len(ss))
	copy(ss2, ss)
	return func(e *request.Execution) bool {
		for _, s := range ss2 {
			if e.StatusCode() == s {
				return true
			}
		}
		return false
	}
}

func transientErr(e *request.Execution) bool {
	return transient.Categorize(e.Err).Transient()
}
