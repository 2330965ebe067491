// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

// A HandlerGroup is a group of event handler chains which can be
// installed in a Scheduler.
type HandlerGroup struct {
	handlers [][]Handler
}

// PushBack adds an event handler to the back of the event handler chain
// for a specific event type.
func (g *HandlerGroup) PushBack(evt Event, h Handler) {
	if h == nil {
		panic("reqq: nil handler")
	}

	if evt < 0 || evt >= eventSentinel {
		panic("reqq: invalid event")
	}

	if g.handlers == nil {
		g.handlers = make([][]Handler, numEvents)
	}

	g.handlers[evt] = append(g.handlers[evt], h)
}

// PushBackAll adds an event handler to the back of the chain of every
// event type.
func (g *HandlerGroup) PushBackAll(h Handler) {
	for _, evt := range Events() {
		g.PushBack(evt, h)
	}
}

func (g *HandlerGroup) run(evt Event, r *Request) {
	if g == nil {
		return
	}
	i := int(evt)
	if i < len(g.handlers) {
		run(g.handlers[i], evt, r)
	}
}

func run(chain []Handler, evt Event, r *Request) {
	for _, h := range chain {
		h.Handle(evt, r)
	}
}

// A Handler handles the occurrence of an event in the life cycle of a
// scheduled request.
//
// Handlers run on the goroutine draining the scheduler's work queue,
// serially with callbacks. They must not retain the request after
// returning, and should not block.
type Handler interface {
	Handle(Event, *Request)
}

// The HandlerFunc type is an adapter to allow the use of ordinary
// functions as event handlers. If f is a function with appropriate
// signature, then HandlerFunc(f) is a Handler that calls f.
type HandlerFunc func(Event, *Request)

// Handle calls f(evt, r).
func (f HandlerFunc) Handle(evt Event, r *Request) {
	f(evt, r)
}
