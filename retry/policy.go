// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/metacat/reqq/request"
)

// A Policy decides whether to retry a failed attempt and, if so, how
// long to wait first.
type Policy interface {
	Decider
	Waiter
}

// Never is a policy that never retries. It is the policy of the zero
// value reqq.Client.
var Never Policy = policy{Times(0), NewFixedWaiter(0)}

// Transient retries twice on transient network errors and on 502, 503
// and 504 responses, backing off exponentially from 100 milliseconds.
var Transient Policy = policy{
	Times(2).And(StatusCode(502, 503, 504).Or(TransientErr)),
	NewExpWaiter(100*time.Millisecond, 2*time.Second, nil),
}

type policy struct {
	decider Decider
	waiter  Waiter
}

// NewPolicy composes a Decider and a Waiter into a Policy.
func NewPolicy(d Decider, w Waiter) Policy {
	if d == nil {
		panic("reqq/retry: nil decider")
	}
	if w == nil {
		panic("reqq/retry: nil waiter")
	}
	return policy{decider: d, waiter: w}
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}
