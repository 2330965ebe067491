// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout defines how long each attempt made by reqq.Client
// may take before it is abandoned.
package timeout
