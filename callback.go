// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import "github.com/metacat/reqq/request"

// A Result is what a Callback receives when its request completes.
type Result struct {
	// ID is the id Submit returned for the request.
	ID uint64
	// Param is the opaque value passed to Submit.
	Param interface{}
	// Execution is the finished plan execution, holding the response
	// status, headers and buffered body.
	Execution *request.Execution
	// Data is the payload in the format the request asked for: a
	// []byte for request.Raw, the decoded document for request.JSON.
	// It is nil on failure.
	Data interface{}
}

// A Callback receives the outcome of a submitted request. Exactly one
// of its methods is called, exactly once, unless the request is
// cancelled first, in which case neither is.
type Callback interface {
	// OnSuccess is called when the request received a 2XX response.
	OnSuccess(r *Result)
	// OnFailure is called in every other case.
	OnFailure(r *Result, err *TransportError)
}

// CallbackFuncs adapts two ordinary functions into a Callback. A nil
// function ignores the corresponding outcome.
type CallbackFuncs struct {
	Success func(r *Result)
	Failure func(r *Result, err *TransportError)
}

// OnSuccess calls f.Success(r) if it is not nil.
func (f CallbackFuncs) OnSuccess(r *Result) {
	if f.Success != nil {
		f.Success(r)
	}
}

// OnFailure calls f.Failure(r, err) if it is not nil.
func (f CallbackFuncs) OnFailure(r *Result, err *TransportError) {
	if f.Failure != nil {
		f.Failure(r, err)
	}
}
