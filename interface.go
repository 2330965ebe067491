// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import "github.com/metacat/reqq/request"

// Doer is the interface that wraps the basic Do method.
//
// Do executes a request plan synchronously and returns the final
// execution state, which must never be nil, and an error if no
// complete response was obtained. Client implements Doer.
type Doer interface {
	Do(p *request.Plan) (*request.Execution, error)
}

// Getter is the interface that wraps the basic Get method.
type Getter interface {
	Get(url string) (*request.Execution, error)
}

// Submitter is the interface that wraps the basic Submit and
// SubmitPlan methods. Scheduler implements Submitter.
type Submitter interface {
	Submit(url string, cb Callback, param interface{}, format request.Format) (uint64, error)
	SubmitPlan(p *request.Plan, cb Callback, param interface{}) uint64
}

// Canceller is the interface that wraps the basic Cancel method.
type Canceller interface {
	Cancel()
}

// Queue is the interface that groups Submitter and Canceller.
type Queue interface {
	Submitter
	Canceller
}

// Get uses the specified Doer to issue a GET to the specified URL.
func Get(d Doer, url string) (*request.Execution, error) {
	p, err := request.NewPlan("GET", url)
	if err != nil {
		return nil, err
	}
	return d.Do(p)
}
