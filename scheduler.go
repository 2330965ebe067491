// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/metacat/reqq/request"
)

// A Request is a request tracked by a Scheduler. Event handlers
// receive it; it is owned by the scheduler and must not be modified.
type Request struct {
	// ID is the id assigned at submission. Ids start at 1 and increase
	// by one with every submission to the same scheduler.
	ID uint64
	// Plan is the plan handed to the transport.
	Plan *request.Plan
	// Callback receives the outcome.
	Callback Callback
	// Param is the opaque value passed to Submit.
	Param interface{}
	// Execution is the execution reported by the transport. It is nil
	// until the request completes.
	Execution *request.Execution
	// Panic holds the value recovered from a panicking callback.
	Panic interface{}

	gen  uint64
	stop context.CancelFunc
}

// A Scheduler issues HTTP GET requests through a Transport while
// keeping at most a fixed number of them in flight. Requests beyond
// that limit wait in a FIFO queue and are issued as slots free up.
//
// A Scheduler never retries. Every request that is not cancelled
// resolves exactly once, through its Callback.
//
// Callbacks, event handlers and calls to the transport's Issue method
// are never run concurrently for one scheduler: they are queued as work
// items and drained one at a time by whichever goroutine is currently
// inside the scheduler. Submit and Cancel may therefore be called from
// within a callback.
//
// A Scheduler is safe for concurrent use by multiple goroutines.
type Scheduler struct {
	// Handlers is the scheduler's event handler group. It must be set,
	// if at all, before the first request is submitted.
	Handlers *HandlerGroup

	transport Transport
	maxActive int

	mu       sync.Mutex
	nextID   uint64
	gen      uint64
	active   map[uint64]*Request
	pending  []*Request
	work     []func()
	draining bool
}

// NewScheduler returns a scheduler keeping at most maxActive requests
// in flight on transport t. Values of maxActive below 1 are treated as
// 1.
func NewScheduler(maxActive int, t Transport) *Scheduler {
	if t == nil {
		panic("reqq: nil transport")
	}
	if maxActive < 1 {
		maxActive = 1
	}
	return &Scheduler{
		transport: t,
		maxActive: maxActive,
		active:    make(map[uint64]*Request),
	}
}

var errNilCallback = errors.New("reqq: nil callback")

// Submit queues a GET of url, to be delivered to cb in the given
// format, and returns the id of the new request.
//
// An error is returned only if url cannot be parsed or cb is nil.
// Transfer failures are never returned here; they go to
// cb.OnFailure.
//
// Submit does not wait for the transfer. If no other goroutine is
// draining the scheduler's work queue, however, the calling goroutine
// drains it before returning, which may include running callbacks of
// other requests that complete meanwhile. Callers that must not run
// foreign callbacks should submit from a dedicated goroutine.
func (s *Scheduler) Submit(url string, cb Callback, param interface{}, format request.Format) (uint64, error) {
	if cb == nil {
		return 0, errNilCallback
	}
	p, err := request.NewPlan("GET", url)
	if err != nil {
		return 0, err
	}
	p.Format = format
	return s.SubmitPlan(p, cb, param), nil
}

// SubmitPlan queues a caller-built plan and returns the id of the new
// request. The plan's context bounds the transfer; Cancel also aborts
// it.
func (s *Scheduler) SubmitPlan(p *request.Plan, cb Callback, param interface{}) uint64 {
	if p == nil {
		panic("reqq: nil plan")
	}
	if cb == nil {
		panic("reqq: nil callback")
	}

	s.mu.Lock()
	s.nextID++
	r := &Request{
		ID:       s.nextID,
		Plan:     p,
		Callback: cb,
		Param:    param,
		gen:      s.gen,
	}
	s.pending = append(s.pending, r)
	s.post(func() { s.Handlers.run(Submitted, r) })
	s.promote()
	s.mu.Unlock()

	s.drain()
	return r.ID
}

// Cancel drops every pending and active request. Transfers in flight
// are aborted through their plan context, and their completions, if
// the transport still reports any, are discarded. No callback is
// called for a cancelled request, including one whose completion has
// been received but whose callback has not yet run. Like Submit, Cancel
// may drain queued work on the calling goroutine.
func (s *Scheduler) Cancel() {
	s.mu.Lock()
	s.gen++
	dropped := make([]*Request, 0, len(s.active)+len(s.pending))
	for _, r := range s.active {
		if r.stop != nil {
			r.stop()
		}
		dropped = append(dropped, r)
	}
	dropped = append(dropped, s.pending...)
	sort.Slice(dropped, func(i, j int) bool {
		return dropped[i].ID < dropped[j].ID
	})
	s.active = make(map[uint64]*Request)
	s.pending = nil
	for _, r := range dropped {
		r := r
		s.post(func() { s.Handlers.run(Cancelled, r) })
	}
	s.mu.Unlock()

	s.drain()
}

// Active returns the number of requests in flight.
func (s *Scheduler) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

// Pending returns the number of requests waiting for a slot.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// MaxActive returns the concurrency limit.
func (s *Scheduler) MaxActive() int {
	return s.maxActive
}

// promote moves requests from the head of the queue into free slots.
// The caller must hold s.mu.
func (s *Scheduler) promote() {
	for len(s.pending) > 0 && len(s.active) < s.maxActive {
		r := s.pending[0]
		s.pending[0] = nil
		s.pending = s.pending[1:]
		s.active[r.ID] = r
		s.post(func() { s.issue(r) })
	}
}

func (s *Scheduler) issue(r *Request) {
	s.mu.Lock()
	if s.active[r.ID] != r {
		s.mu.Unlock()
		return
	}
	ctx, stop := context.WithCancel(r.Plan.Context())
	r.stop = stop
	s.mu.Unlock()

	s.Handlers.run(Issued, r)
	s.transport.Issue(r.Plan.WithContext(ctx), func(e *request.Execution) {
		s.complete(r, e)
	})
}

var errNilExecution = errors.New("reqq: transport reported nil execution")

func (s *Scheduler) complete(r *Request, e *request.Execution) {
	if e == nil {
		e = &request.Execution{Plan: r.Plan, Err: urlErrorWrap(r.Plan, errNilExecution)}
	}

	s.mu.Lock()
	if s.active[r.ID] != r || r.gen != s.gen {
		late := *r
		late.Execution = e
		s.post(func() { s.Handlers.run(Discarded, &late) })
		s.mu.Unlock()
		s.drain()
		return
	}
	delete(s.active, r.ID)
	r.stop()
	r.Execution = e
	s.post(func() { s.deliver(r) })
	s.promote()
	s.mu.Unlock()

	s.drain()
}

func (s *Scheduler) deliver(r *Request) {
	s.mu.Lock()
	stale := r.gen != s.gen
	s.mu.Unlock()
	if stale {
		s.Handlers.run(Discarded, r)
		return
	}

	e := r.Execution
	res := &Result{
		ID:        r.ID,
		Param:     r.Param,
		Execution: e,
	}
	if e.Successful() {
		res.Data = e.Data
		s.Handlers.run(Succeeded, r)
		s.call(r, func() { r.Callback.OnSuccess(res) })
		return
	}
	err := NewTransportError(e)
	s.Handlers.run(Failed, r)
	s.call(r, func() { r.Callback.OnFailure(res, err) })
}

func (s *Scheduler) call(r *Request, f func()) {
	defer func() {
		if p := recover(); p != nil {
			r.Panic = p
			s.Handlers.run(CallbackPanicked, r)
		}
	}()
	f()
}

// post queues a work item. The caller must hold s.mu.
func (s *Scheduler) post(f func()) {
	s.work = append(s.work, f)
}

// drain runs queued work items in order until the queue is empty. If
// another goroutine is already draining, drain returns at once and the
// other goroutine picks up the work.
func (s *Scheduler) drain() {
	s.mu.Lock()
	if s.draining {
		s.mu.Unlock()
		return
	}
	s.draining = true
	locked := true
	defer func() {
		if !locked {
			s.mu.Lock()
		}
		s.draining = false
		s.mu.Unlock()
	}()

	for len(s.work) > 0 {
		f := s.work[0]
		s.work[0] = nil
		s.work = s.work[1:]
		s.mu.Unlock()
		locked = false
		f()
		s.mu.Lock()
		locked = true
	}
}
