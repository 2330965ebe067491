// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import "github.com/metacat/reqq/cmd/catfetch/cmd"

func main() {
	cmd.Execute()
}
