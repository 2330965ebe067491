// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"
)

const (
	nilCtxMsg = "reqq/request: nil context"
)

// A Plan describes one logical HTTP request to the catalog.
//
// Catalog requests never carry a body, so unlike http.Request a Plan
// has no body fields. The Format field is a hint for the transport and
// does not affect what is sent on the wire.
type Plan struct {
	// Method specifies the HTTP method. An empty string means GET.
	Method string
	// URL specifies the URL to access.
	URL *urlpkg.URL
	// Header contains the request header fields to send. It is never
	// nil on a Plan returned by NewPlan.
	Header http.Header
	// Format tells the transport how the caller wants the response
	// body delivered.
	Format Format
	// ctx controls the whole plan execution. Change it with
	// WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url)
}

// NewPlanWithContext returns a new Plan with an empty header and the
// Raw format.
func NewPlanWithContext(ctx context.Context, method, url string) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("reqq/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = removeEmptyPort(u.Host)
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
	}, nil
}

// Context returns the plan's context, which is never nil.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// RequestURI returns the request-URI the plan will send: the escaped
// path plus the query string. Digest authentication hashes this value.
func (p *Plan) RequestURI() string {
	return p.URL.RequestURI()
}

// ToRequest creates the http.Request for one attempt at the plan. The
// request's context is ctx, which may not be nil. The header map is
// shared with the plan.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := &http.Request{
		Method:     p.Method,
		URL:        p.URL,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     p.Header,
		Host:       p.URL.Host,
	}
	return r.WithContext(ctx)
}

func validMethod(method string) bool {
	return len(method) > 0 && strings.IndexFunc(method, isNotToken) == -1
}

func isNotToken(r rune) bool {
	return !httpguts.IsTokenRune(r)
}

// removeEmptyPort strips the empty port in "host:" as mandated by
// RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if strings.LastIndex(host, ":") > strings.LastIndex(host, "]") {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
