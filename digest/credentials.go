// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package digest

import (
	"crypto/md5"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
)

// nc is the nonce count. Every challenge is answered exactly once.
const nc = "00000001"

// A CnonceFunc returns the client nonce used to answer a challenge.
type CnonceFunc func(c *Challenge) string

// RandomCnonce returns 32 random hex digits.
func RandomCnonce(_ *Challenge) string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

// ServerNonce returns the server's own nonce as the client nonce. Older
// catalog web clients answer challenges this way; use it when a server
// expects that exact behavior.
func ServerNonce(c *Challenge) string {
	return c.Nonce
}

func h(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Response computes the request-digest for a GET of uri.
func (c *Challenge) Response(username, password, uri, cnonce string) string {
	ha1 := h(username + ":" + c.Realm + ":" + password)
	ha2 := h("GET:" + uri)
	if c.Qop == "" {
		return h(ha1 + ":" + c.Nonce + ":" + ha2)
	}
	return h(strings.Join([]string{ha1, c.Nonce, nc, cnonce, c.Qop, ha2}, ":"))
}

// Authorization returns the Authorization header value answering the
// challenge for a GET of uri, which must be the request-URI (path and
// query) actually sent.
func (c *Challenge) Authorization(username, password, uri, cnonce string) string {
	var b strings.Builder
	b.WriteString("Digest ")
	b.WriteString(`username="` + escape(username) + `"`)
	b.WriteString(`, realm="` + escape(c.Realm) + `"`)
	b.WriteString(`, nonce="` + escape(c.Nonce) + `"`)
	b.WriteString(`, uri="` + escape(uri) + `"`)
	if c.Qop != "" {
		b.WriteString(`, cnonce="` + escape(cnonce) + `"`)
		b.WriteString(", nc=" + nc)
		b.WriteString(", qop=" + c.Qop)
	}
	b.WriteString(`, response="` + c.Response(username, password, uri, cnonce) + `"`)
	b.WriteString(", algorithm=" + c.Algorithm)
	if c.Opaque != "" {
		b.WriteString(`, opaque="` + escape(c.Opaque) + `"`)
	}
	return b.String()
}

var escaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escape(s string) string {
	return escaper.Replace(s)
}
