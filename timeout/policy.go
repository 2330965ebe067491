// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package timeout

import (
	"time"

	"github.com/metacat/reqq/request"
)

// A Policy decides the timeout of the next attempt within a plan
// execution.
//
// Implementations must be safe for concurrent use by multiple
// goroutines, since one client serves every request a scheduler has in
// flight.
type Policy interface {
	Timeout(e *request.Execution) time.Duration
}

// DefaultPolicy sets a fixed timeout of 30 seconds on each attempt.
// Catalog queries over large namespaces are slow, so the default is
// generous.
var DefaultPolicy Policy = Fixed(30 * time.Second)

// Infinite never times out.
var Infinite Policy = Fixed(1<<63 - 1)

// Fixed returns a policy that uses d for every attempt.
func Fixed(d time.Duration) Policy {
	return policy([]time.Duration{d})
}

// Adaptive returns a policy that uses usual unless the previous attempt
// timed out. After the first timeout it uses after[0], after the second
// after[1], and so on, sticking to the last element of after once they
// run out.
//
//	p := Adaptive(2*time.Second, 10*time.Second, time.Minute)
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	p := make([]time.Duration, 1, 1+len(after))
	p[0] = usual
	return policy(append(p, after...))
}

type policy []time.Duration

func (p policy) Timeout(e *request.Execution) time.Duration {
	if !e.Timeout() {
		return p[0]
	}
	i := e.AttemptTimeouts
	if i > len(p)-1 {
		i = len(p) - 1
	}
	return p[i]
}
