// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the two types every other package in reqq
passes around: Plan, which describes a logical GET request to the
catalog, and Execution, which records what happened when a Plan was
carried out.

A Plan is a stripped-down http.Request: method, URL, headers, a context
and a Format hint telling the transport whether the caller wants the
raw response bytes or a decoded JSON document.

	p, err := request.NewPlan("GET", "https://catalog.example/app/data/namespaces")
	...
	p.Format = request.JSON
	p.Header.Set("Authorization", auth)

A Plan may carry a context. Cancelling the context abandons the
transfer; the scheduler uses this to implement Cancel.

	p, err := request.NewPlanWithContext(ctx, "GET", u)

An Execution is produced by the synchronous reqq.Client and handed to
schedulers and callbacks by transports. You will rarely build one
yourself except in tests.
*/
package request
