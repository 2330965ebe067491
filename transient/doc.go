// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transient sorts the errors a request transport can produce
// into a handful of categories. The scheduler uses the categories to
// describe failures to callers, and caller-side retry policies use them
// to decide whether another attempt is worthwhile.
package transient
