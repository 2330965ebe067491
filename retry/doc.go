// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry holds caller-side retry policies for reqq.Client.
//
// The scheduler never retries on its own: a request that fails is
// reported to its callback once and forgotten. Callers who want retries
// install a Policy on the Client used by the scheduler's transport,
// which keeps the decision on the caller's side of the line:
//
//	decider := retry.Times(2).And(retry.StatusCode(502, 503).Or(retry.TransientErr))
//	policy := retry.NewPolicy(decider, retry.NewExpWaiter(100*time.Millisecond, 2*time.Second, nil))
//	client := &reqq.Client{RetryPolicy: policy}
//
// The zero Client uses Never.
package retry
