// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package reqq

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/metacat/reqq/request"
	"github.com/metacat/reqq/retry"
	"github.com/metacat/reqq/timeout"
)

var httpServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var httpsServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var servers = []*httptest.Server{httpServer, httpsServer}

func TestMain(m *testing.M) {
	httpServer.Start()
	httpsServer.StartTLS()
	waitForServerStart(httpServer)
	waitForServerStart(httpsServer)
	code := m.Run()
	httpServer.Close()
	httpsServer.Close()
	os.Exit(code)
}

func waitForServerStart(server *httptest.Server) {
	cl := &Client{
		HTTPDoer:      server.Client(),
		RetryPolicy:   retry.NewPolicy(retry.Before(10*time.Second).And(retry.TransientErr), retry.NewFixedWaiter(50*time.Millisecond)),
		TimeoutPolicy: timeout.Fixed(2 * time.Second),
	}
	p := (&serverInstruction{StatusCode: 200}).toPlan(context.Background(), server)
	e, err := cl.Do(p)
	if e.StatusCode() != 200 {
		panic(fmt.Sprintf("Test server startup failed with status %d and error %v",
			e.StatusCode(), err))
	}
}

func serverName(server *httptest.Server) string {
	switch server {
	case httpServer:
		return "http"
	case httpsServer:
		return "https"
	default:
		panic("unknown server")
	}
}

// serverInstruction tells serverHandler how to respond. Catalog
// requests are GETs, so the instruction travels in the query string.
type serverInstruction struct {
	HeaderPause time.Duration
	StatusCode  int
	ContentType string
	Body        string
}

func (i *serverInstruction) toURL(server *httptest.Server) string {
	q := url.Values{}
	if i.HeaderPause > 0 {
		q.Set("pause", i.HeaderPause.String())
	}
	if i.StatusCode != 0 {
		q.Set("status", strconv.Itoa(i.StatusCode))
	}
	if i.ContentType != "" {
		q.Set("type", i.ContentType)
	}
	if i.Body != "" {
		q.Set("body", i.Body)
	}
	return server.URL + "/data?" + q.Encode()
}

func (i *serverInstruction) toPlan(ctx context.Context, server *httptest.Server) *request.Plan {
	p, err := request.NewPlanWithContext(ctx, "GET", i.toURL(server))
	if err != nil {
		panic(err)
	}

	return p
}

func (i *serverInstruction) fromRequest(req *http.Request) error {
	q := req.URL.Query()
	if s := q.Get("pause"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		i.HeaderPause = d
	}
	if s := q.Get("status"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		i.StatusCode = n
	}
	i.ContentType = q.Get("type")
	i.Body = q.Get("body")
	return nil
}

func serverHandler(w http.ResponseWriter, req *http.Request) {
	var i serverInstruction
	err := i.fromRequest(req)
	if err != nil {
		w.WriteHeader(400)
		_, _ = io.WriteString(w, fmt.Sprintf("failed to read instruction: %s", err.Error()))
		return
	}

	if i.StatusCode == 0 {
		w.WriteHeader(400)
		_, _ = io.WriteString(w, fmt.Sprintf("bad StatusCode in instruction: %v", i))
		return
	}

	header := w.Header()
	header.Set("Content-Length", strconv.Itoa(len(i.Body)))
	if i.ContentType != "" {
		header.Set("Content-Type", i.ContentType)
	}

	// Let the client play with timeouts.
	select {
	case <-time.After(i.HeaderPause):
	case <-req.Context().Done():
		return
	}

	w.WriteHeader(i.StatusCode)
	_, _ = io.WriteString(w, i.Body)
}
