// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"net/http"
	"time"

	"github.com/metacat/reqq/transient"
)

// An Execution represents the state of a single Plan execution.
//
// Policies and transports read an Execution while the plan is being
// carried out; once it has ended it is handed to the scheduler and,
// through a Result, to the caller's callback. Treat the fields of an
// ended Execution as read-only.
type Execution struct {
	// Plan is the plan being executed. It is never nil.
	Plan *Plan
	// Start is the time the execution started.
	Start time.Time
	// End is the time the execution ended, or the zero time while it
	// is still in flight.
	End time.Time
	// Attempt is the zero-based number of the current (or last)
	// attempt. It only exceeds zero if a caller-side retry policy is
	// installed on the client.
	Attempt int
	// AttemptTimeouts counts the attempts that ended in a timeout.
	AttemptTimeouts int
	// Request is the HTTP request sent in the current (or last)
	// attempt.
	Request *http.Request
	// Response is the HTTP response received in the most recent
	// attempt, or nil if it ended in error.
	Response *http.Response
	// Err is the error from the most recent attempt. Whenever it is
	// non-nil it has the type *url.Error.
	Err error
	// Body is the complete response body of the most recent attempt.
	Body []byte
	// Data is the response payload in the form requested by the plan's
	// Format: Body itself for Raw, the decoded document for JSON. It is
	// set by the transport, not by the client.
	Data interface{}
}

// StatusCode returns the status code of the most recent response, or 0
// if there is none.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

// Status returns the status text of the most recent response, such as
// "404 Not Found", or the empty string if there is none.
func (e *Execution) Status() string {
	if e.Response == nil {
		return ""
	}
	return e.Response.Status
}

// Header returns the headers of the most recent response. If there is
// no response the nil header is returned, which is safe to read.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}
	return e.Response.Header
}

// Successful reports whether the execution ended without error and
// with a status code in the 2XX class.
func (e *Execution) Successful() bool {
	s := e.StatusCode()
	return e.Err == nil && s >= 200 && s < 300
}

// Duration returns the duration of the execution so far, or its total
// duration if it has ended.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return time.Duration(0)
	} else if !e.Ended() {
		return time.Since(e.Start)
	}
	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Timeout indicates whether Err is a timeout, either of the attempt
// itself or of the plan context.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}
