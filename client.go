// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/metacat/reqq/request"
	"github.com/metacat/reqq/retry"
	"github.com/metacat/reqq/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the Go
// standard library http.Client.
type HTTPDoer interface {
	Do(r *http.Request) (*http.Response, error)
}

// A Client carries out a single request plan synchronously: it sends
// the request, buffers the whole response body, and applies the
// caller's timeout and retry policies. Its zero value is a valid
// configuration.
//
// The zero value uses http.DefaultClient as the HTTPDoer,
// timeout.DefaultPolicy for attempt timeouts and retry.Never, so by
// default every plan gets exactly one attempt.
//
// Client is safe for concurrent use by multiple goroutines. Schedulers
// use it through HTTPTransport, one goroutine per request in flight.
type Client struct {
	// HTTPDoer sends the HTTP requests. Redirects, cookies and TLS are
	// its business. If nil, http.DefaultClient is used.
	//
	// To keep the session cookie obtained by digest authentication,
	// use an http.Client with a cookie jar and share it with the
	// digest.Authenticator.
	HTTPDoer HTTPDoer
	// RetryPolicy decides whether to retry a failed attempt. If nil,
	// retry.Never is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy sets the timeout of each attempt. If nil,
	// timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
}

// Do executes the plan and returns the final execution state.
//
// The returned Execution is never nil. An error is returned, and is
// also stored in the execution's Err field, if the final attempt could
// not obtain a complete response; it is always a *url.Error. A non-2XX
// status code is not an error at this level.
//
// A plan whose context is done is never retried.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	e := &request.Execution{
		Plan:  p,
		Start: time.Now(),
	}

	doer := c.doer()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.Never
	}

	for {
		// The policy sees the outcome of the previous attempt.
		d := timeoutPolicy.Timeout(e)
		e.Response = nil
		e.Err = nil
		e.Body = nil
		sendAndReceive(p, e, doer, d)
		if e.Timeout() {
			e.AttemptTimeouts++
		}
		if p.Context().Err() != nil || !retryPolicy.Decide(e) {
			break
		}
		timer := time.NewTimer(retryPolicy.Wait(e))
		select {
		case <-timer.C:
		case <-p.Context().Done():
			timer.Stop()
			e.Err = urlErrorWrap(p, p.Context().Err())
			e.End = time.Now()
			return e, e.Err
		}
		e.Attempt++
	}

	e.End = time.Now()
	return e, e.Err
}

func sendAndReceive(p *request.Plan, e *request.Execution, doer HTTPDoer, d time.Duration) {
	ctx, cancel := context.WithTimeout(p.Context(), d)
	defer cancel()
	e.Request = p.ToRequest(ctx)
	var err error
	e.Response, err = doer.Do(e.Request)
	if err != nil {
		e.Response = nil
		e.Err = urlErrorWrap(p, err)
		return
	}
	defer func() {
		_ = e.Response.Body.Close()
	}()
	e.Body, err = io.ReadAll(e.Response.Body)
	if err != nil {
		e.Err = urlErrorWrap(p, err)
	}
}

// Get issues a GET to the specified URL, using the same policies
// followed by Do.
func (c *Client) Get(url string) (*request.Execution, error) {
	return Get(c, url)
}

// CloseIdleConnections invokes the same method on the underlying
// HTTPDoer, if it has one.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(interface{ CloseIdleConnections() }); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}
