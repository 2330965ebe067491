// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"fmt"
	"strings"
)

// A Format is the response-type hint attached to a Plan. The scheduler
// passes it through to the transport untouched; the transport decides
// what to hand back in Execution.Data.
type Format int

const (
	// Raw asks for the response body as a []byte.
	Raw Format = iota
	// JSON asks for the response body decoded as a JSON document.
	JSON
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case JSON:
		return "json"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a format name into a Format. The empty string
// means Raw.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return Raw, nil
	case "json":
		return JSON, nil
	default:
		return Raw, fmt.Errorf("reqq/request: unknown format %q", s)
	}
}
