// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/metacat/reqq/request"
)

// A Transport carries out request plans on behalf of a Scheduler.
//
// Issue must not block: it starts the transfer and returns. When the
// transfer is over, successfully or not, the transport calls done
// exactly once with the final execution, from any goroutine. Issue may
// also call done before returning.
//
// The transport should honor the plan's context; the scheduler cancels
// it to abandon a transfer. It should also honor the plan's Format by
// filling in Execution.Data.
type Transport interface {
	Issue(p *request.Plan, done func(*request.Execution))
}

// The TransportFunc type is an adapter to allow the use of ordinary
// functions as transports.
type TransportFunc func(p *request.Plan, done func(*request.Execution))

// Issue calls f(p, done).
func (f TransportFunc) Issue(p *request.Plan, done func(*request.Execution)) {
	f(p, done)
}

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPTransport is the standard Transport. It runs each plan through
// a Doer on its own goroutine and decodes successful response bodies
// according to the plan's Format. Its zero value is ready to use.
type HTTPTransport struct {
	// Doer executes the plans. If nil, a zero value Client is used.
	Doer Doer
}

// Issue starts executing p on a new goroutine.
//
// For request.JSON plans with a successful response, the body is
// decoded into Execution.Data. If decoding fails, the execution's Err
// is set, so the scheduler reports the request as failed.
func (t *HTTPTransport) Issue(p *request.Plan, done func(*request.Execution)) {
	d := t.Doer
	if d == nil {
		d = &Client{}
	}
	go func() {
		e, err := d.Do(p)
		if e == nil {
			e = &request.Execution{Plan: p, Err: urlErrorWrap(p, err)}
		}
		if e.Successful() {
			decode(e)
		}
		done(e)
	}()
}

func decode(e *request.Execution) {
	switch e.Plan.Format {
	case request.JSON:
		var v interface{}
		if err := jsonAPI.Unmarshal(e.Body, &v); err != nil {
			e.Err = urlErrorWrap(e.Plan, err)
			return
		}
		e.Data = v
	default:
		e.Data = e.Body
	}
}
