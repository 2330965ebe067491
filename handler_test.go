// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandlerGroup(t *testing.T) {
	var evts []string
	var reqs []*Request
	h1 := &testHandler{seq: 1, evts: &evts, reqs: &reqs}
	h2 := &testHandler{seq: 2, evts: &evts, reqs: &reqs}
	g := &HandlerGroup{}
	t.Run("PushBack", func(t *testing.T) {
		assert.PanicsWithValue(t, "reqq: nil handler", func() { g.PushBack(Submitted, nil) })
		assert.PanicsWithValue(t, "reqq: invalid event", func() { g.PushBack(Event(123), h1) })
		g.PushBack(Submitted, h1)
		g.PushBack(Submitted, h2)
		g.PushBack(Failed, h1)
	})
	t.Run("run", func(t *testing.T) {
		r1 := &Request{ID: 1}
		r2 := &Request{ID: 2}
		assert.Empty(t, evts)
		assert.Empty(t, reqs)
		g.run(Discarded, r1)
		assert.Empty(t, evts)
		assert.Empty(t, reqs)
		g.run(Submitted, r1)
		assert.Equal(t, []string{"1.Submitted", "2.Submitted"}, evts)
		assert.Equal(t, []*Request{r1, r1}, reqs)
		evts = evts[:0]
		reqs = reqs[:0]
		g.run(Failed, r2)
		assert.Equal(t, []string{"1.Failed"}, evts)
		assert.Equal(t, []*Request{r2}, reqs)
	})
	t.Run("PushBackAll", func(t *testing.T) {
		var all []string
		g := &HandlerGroup{}
		g.PushBackAll(HandlerFunc(func(evt Event, _ *Request) {
			all = append(all, evt.Name())
		}))
		r := &Request{}
		for _, evt := range Events() {
			g.run(evt, r)
		}
		assert.Equal(t, eventNames, all)
	})
	t.Run("nil group", func(t *testing.T) {
		var g *HandlerGroup
		assert.NotPanics(t, func() { g.run(Submitted, &Request{}) })
	})
}

type testHandler struct {
	seq  int
	evts *[]string
	reqs *[]*Request
}

func (h *testHandler) Handle(evt Event, r *Request) {
	*h.evts = append(*h.evts, fmt.Sprintf("%d.%s", h.seq, evt))
	*h.reqs = append(*h.reqs, r)
}

func TestHandlerFunc(t *testing.T) {
	var _evt Event
	var _r *Request
	var f = func(evt Event, r *Request) {
		_evt = evt
		_r = r
	}
	h := HandlerFunc(f)
	r := &Request{}
	h.Handle(Issued, r)

	assert.Equal(t, Issued, _evt)
	assert.Same(t, r, _r)
}

func (g *HandlerGroup) mock(evt Event) *mockHandler {
	if int(evt) < len(g.handlers) {
		for _, h := range g.handlers[evt] {
			if m, ok := h.(*mockHandler); ok {
				return m
			}
		}
	}

	m := &mockHandler{}
	g.PushBack(evt, m)
	return m
}

func (g *HandlerGroup) assertExpectations(t *testing.T) {
	if g.handlers == nil {
		return
	}

	for _, evt := range Events() {
		for _, h := range g.handlers[evt] {
			if m, ok := h.(*mockHandler); ok {
				m.AssertExpectations(t)
			}
		}
	}
}

type mockHandler struct {
	mock.Mock
}

func (m *mockHandler) Handle(evt Event, r *Request) {
	m.Called(evt, r)
}
