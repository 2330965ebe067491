// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/metacat/reqq/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTransportFunc(t *testing.T) {
	var got *request.Plan
	f := TransportFunc(func(p *request.Plan, done func(*request.Execution)) {
		got = p
		done(&request.Execution{Plan: p})
	})
	p, err := request.NewPlan("GET", "http://example.com")
	require.NoError(t, err)
	var e *request.Execution
	f.Issue(p, func(x *request.Execution) { e = x })
	assert.Same(t, p, got)
	require.NotNil(t, e)
	assert.Same(t, p, e.Plan)
}

func TestHTTPTransport(t *testing.T) {
	t.Run("raw", testHTTPTransportRaw)
	t.Run("JSON", testHTTPTransportJSON)
	t.Run("bad JSON", testHTTPTransportBadJSON)
	t.Run("failure not decoded", testHTTPTransportFailureNotDecoded)
	t.Run("nil execution", testHTTPTransportNilExecution)
	t.Run("zero value", testHTTPTransportZeroValue)
}

func issueAndWait(t *testing.T, tr Transport, p *request.Plan) *request.Execution {
	ch := make(chan *request.Execution, 1)
	tr.Issue(p, func(e *request.Execution) { ch <- e })
	select {
	case e := <-ch:
		return e
	case <-time.After(10 * time.Second):
		require.FailNow(t, "transport never completed")
		return nil
	}
}

func mockResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testHTTPTransportRaw(t *testing.T) {
	t.Parallel()

	doer := newMockHTTPDoer(t)
	doer.On("Do", mock.Anything).Return(mockResponse(200, "raw bytes"), nil).Once()
	tr := &HTTPTransport{Doer: &Client{HTTPDoer: doer}}
	p, err := request.NewPlan("GET", "http://example.com/f")
	require.NoError(t, err)

	e := issueAndWait(t, tr, p)

	doer.AssertExpectations(t)
	require.NotNil(t, e)
	assert.NoError(t, e.Err)
	assert.Equal(t, []byte("raw bytes"), e.Data)
}

func testHTTPTransportJSON(t *testing.T) {
	t.Parallel()

	doer := newMockHTTPDoer(t)
	doer.On("Do", mock.Anything).Return(mockResponse(200, `{"name":"f1","size":12,"tags":["a","b"]}`), nil).Once()
	tr := &HTTPTransport{Doer: &Client{HTTPDoer: doer}}
	p, err := request.NewPlan("GET", "http://example.com/f")
	require.NoError(t, err)
	p.Format = request.JSON

	e := issueAndWait(t, tr, p)

	require.NotNil(t, e)
	assert.NoError(t, e.Err)
	assert.Equal(t, map[string]interface{}{
		"name": "f1",
		"size": float64(12),
		"tags": []interface{}{"a", "b"},
	}, e.Data)
}

func testHTTPTransportBadJSON(t *testing.T) {
	t.Parallel()

	doer := newMockHTTPDoer(t)
	doer.On("Do", mock.Anything).Return(mockResponse(200, `{"name":`), nil).Once()
	tr := &HTTPTransport{Doer: &Client{HTTPDoer: doer}}
	p, err := request.NewPlan("GET", "http://example.com/f")
	require.NoError(t, err)
	p.Format = request.JSON

	e := issueAndWait(t, tr, p)

	require.NotNil(t, e)
	assert.Error(t, e.Err)
	assert.IsType(t, &url.Error{}, e.Err)
	assert.False(t, e.Successful())
	assert.Nil(t, e.Data)
	assert.Equal(t, 200, e.StatusCode())
}

func testHTTPTransportFailureNotDecoded(t *testing.T) {
	t.Parallel()

	doer := newMockHTTPDoer(t)
	doer.On("Do", mock.Anything).Return(mockResponse(500, "<html>oops</html>"), nil).Once()
	tr := &HTTPTransport{Doer: &Client{HTTPDoer: doer}}
	p, err := request.NewPlan("GET", "http://example.com/f")
	require.NoError(t, err)
	p.Format = request.JSON

	e := issueAndWait(t, tr, p)

	require.NotNil(t, e)
	assert.NoError(t, e.Err)
	assert.Nil(t, e.Data)
	assert.Equal(t, []byte("<html>oops</html>"), e.Body)
}

func testHTTPTransportNilExecution(t *testing.T) {
	t.Parallel()

	doer := newMockDoer(t)
	cause := errors.New("no execution")
	doer.On("Do", mock.Anything).Return(nil, cause).Once()
	tr := &HTTPTransport{Doer: doer}
	p, err := request.NewPlan("GET", "http://example.com/f")
	require.NoError(t, err)

	e := issueAndWait(t, tr, p)

	require.NotNil(t, e)
	assert.Same(t, p, e.Plan)
	assert.ErrorIs(t, e.Err, cause)
	assert.IsType(t, &url.Error{}, e.Err)
}

func testHTTPTransportZeroValue(t *testing.T) {
	t.Parallel()

	tr := &HTTPTransport{}
	p := (&serverInstruction{
		StatusCode:  200,
		ContentType: "application/json",
		Body:        `[1,2,3]`,
	}).toPlan(context.Background(), httpServer)
	p.Format = request.JSON

	e := issueAndWait(t, tr, p)

	require.NotNil(t, e)
	assert.NoError(t, e.Err)
	assert.Equal(t, []interface{}{float64(1), float64(2), float64(3)}, e.Data)
}
