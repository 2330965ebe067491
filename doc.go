// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package reqq schedules HTTP GET requests against a web service while
bounding how many are in flight at once.

Create a Scheduler with a concurrency limit and a Transport, then
submit requests with a Callback to receive their outcome.

	s := reqq.NewScheduler(4, &reqq.HTTPTransport{})
	id, err := s.Submit("https://catalog.example.com/q?ds=x", reqq.CallbackFuncs{
		Success: func(r *reqq.Result) {
			... // r.Data holds the body, decoded if the format was JSON.
		},
		Failure: func(r *reqq.Result, err *reqq.TransportError) {
			... // err.Status, err.StatusText and err.Body describe it.
		},
	}, nil, request.JSON)

Requests beyond the limit wait in a first-in, first-out queue. Cancel
drops every pending and in-flight request without calling back.

The scheduler never retries. To retry or bound individual requests,
configure the Client used by the transport:

	client := &reqq.Client{
		HTTPDoer:      &http.Client{Jar: jar},
		RetryPolicy:   retry.Transient,
		TimeoutPolicy: timeout.Fixed(10 * time.Second),
	}
	s := reqq.NewScheduler(4, &reqq.HTTPTransport{Doer: client})

To observe the life cycle of scheduled requests, install a handler:

	handlers := &reqq.HandlerGroup{}
	handlers.PushBackAll(reqq.LogHandler(logrus.StandardLogger()))
	s.Handlers = handlers

Package digest logs into services protected by HTTP Digest access
authentication before requests are scheduled.
*/
package reqq
