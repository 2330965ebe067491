// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/metacat/reqq/request"
	"github.com/metacat/reqq/transient"
)

// A TransportError describes a request that did not succeed: either
// the transport could not obtain a response at all (Err is set), or
// the response status was outside the 2XX class (Status is set), or
// both, if the response body could not be read or decoded.
type TransportError struct {
	// Status is the response status code, or 0 if no response was
	// received.
	Status int
	// StatusText is the response status line text, such as
	// "404 Not Found", or the empty string if no response was
	// received.
	StatusText string
	// Body is the response body, if any was read.
	Body []byte
	// Err is the underlying error, or nil if the request failed only
	// because of its status code.
	Err error
}

// NewTransportError builds the TransportError describing an
// unsuccessful execution.
func NewTransportError(e *request.Execution) *TransportError {
	return &TransportError{
		Status:     e.StatusCode(),
		StatusText: e.Status(),
		Body:       e.Body,
		Err:        e.Err,
	}
}

func (err *TransportError) Error() string {
	switch {
	case err.Err != nil && err.Status != 0:
		return fmt.Sprintf("reqq: status %s: %v", err.statusText(), err.Err)
	case err.Err != nil:
		return "reqq: " + err.Err.Error()
	default:
		return "reqq: unsuccessful status " + err.statusText()
	}
}

func (err *TransportError) statusText() string {
	if err.StatusText != "" {
		return err.StatusText
	}
	return fmt.Sprint(err.Status)
}

// Unwrap returns the underlying error.
func (err *TransportError) Unwrap() error {
	return err.Err
}

// Category returns the transient category of the underlying error.
func (err *TransportError) Category() transient.Category {
	return transient.Categorize(err.Err)
}

// Timeout reports whether the request failed because it timed out.
func (err *TransportError) Timeout() bool {
	return err.Category() == transient.Timeout
}

func urlErrorWrap(p *request.Plan, err error) error {
	if _, ok := err.(*url.Error); ok {
		return err
	}

	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: p.URL.String(),
		Err: err,
	}
}

// urlErrorOp mirrors the Op naming of net/http/client.go.
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}

// Temporary reports whether the underlying error is transient, so that
// submitting the same request again might succeed.
func (err *TransportError) Temporary() bool {
	return err.Category().Transient()
}
