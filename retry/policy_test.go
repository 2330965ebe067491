// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"net/http"
	"syscall"
	"testing"
	"time"

	"github.com/metacat/reqq/request"
	"github.com/stretchr/testify/assert"
)

func TestNever(t *testing.T) {
	assert.False(t, Never.Decide(&request.Execution{}))
	assert.False(t, Never.Decide(&request.Execution{Err: syscall.ECONNRESET}))
	assert.Equal(t, time.Duration(0), Never.Wait(&request.Execution{}))
}

func TestTransient(t *testing.T) {
	for _, code := range []int{502, 503, 504} {
		assert.True(t, Transient.Decide(&request.Execution{Response: &http.Response{StatusCode: code}}))
		assert.True(t, Transient.Decide(&request.Execution{Attempt: 1, Response: &http.Response{StatusCode: code}}))
		assert.False(t, Transient.Decide(&request.Execution{Attempt: 2, Response: &http.Response{StatusCode: code}}))
	}
	for _, code := range []int{200, 401, 403, 404, 500} {
		assert.False(t, Transient.Decide(&request.Execution{Response: &http.Response{StatusCode: code}}))
	}
	assert.True(t, Transient.Decide(&request.Execution{Err: syscall.ECONNRESET}))
	assert.Equal(t, 100*time.Millisecond, Transient.Wait(&request.Execution{}))
	assert.Equal(t, 200*time.Millisecond, Transient.Wait(&request.Execution{Attempt: 1}))
}

func TestNewPolicy(t *testing.T) {
	p := &testPolicy{}
	t.Run("Bad Args", func(t *testing.T) {
		assert.PanicsWithValue(t, "reqq/retry: nil decider", func() { NewPolicy(nil, p) })
		assert.PanicsWithValue(t, "reqq/retry: nil waiter", func() { NewPolicy(p, nil) })
	})
	t.Run("Normal", func(t *testing.T) {
		P := NewPolicy(p, p)
		assert.True(t, P.Decide(&request.Execution{}))
		assert.Equal(t, 1, p.d)
		assert.Equal(t, time.Second, P.Wait(&request.Execution{}))
		assert.Equal(t, 1, p.w)
	})
}

type testPolicy struct {
	d int
	w int
}

func (p *testPolicy) Decide(_ *request.Execution) bool {
	p.d++
	return true
}

func (p *testPolicy) Wait(_ *request.Execution) time.Duration {
	p.w++
	return time.Second
}
