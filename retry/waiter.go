// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math/rand"
	"sync"
	"time"

	"github.com/metacat/reqq/request"
)

// A Waiter says how long to wait before retrying a failed attempt. It
// is only consulted after the Decider said yes.
//
// Implementations must be safe for concurrent use by multiple
// goroutines.
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// NewFixedWaiter returns a Waiter that always waits d.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter returns a Waiter whose ceiling doubles with every
// attempt, starting at base and capped at max:
//
//	ceil := min(base * 2**attempt, max)
//
// If r is nil the waiter returns ceil. Otherwise it returns a random
// duration in [0, ceil) drawn from r ("full jitter"). The waiter
// serializes its own use of r.
func NewExpWaiter(base, max time.Duration, r *rand.Rand) Waiter {
	if base < 1 {
		panic("reqq/retry: base must be positive")
	}
	if max < base {
		panic("reqq/retry: max must be at least base")
	}
	return &expWaiter{base: base, max: max, rand: r}
}

type expWaiter struct {
	base time.Duration
	max  time.Duration
	rand *rand.Rand
	lock sync.Mutex
}

func (w *expWaiter) Wait(e *request.Execution) time.Duration {
	ceil := w.max
	if e.Attempt < 62 {
		c := w.base << uint(e.Attempt)
		if c>>uint(e.Attempt) == w.base && c < w.max {
			ceil = c
		}
	}
	if w.rand == nil {
		return ceil
	}
	w.lock.Lock()
	defer w.lock.Unlock()
	return time.Duration(w.rand.Int63n(int64(ceil)))
}
