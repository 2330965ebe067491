// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/metacat/reqq"
	"github.com/metacat/reqq/digest"
	"github.com/metacat/reqq/request"
	"github.com/metacat/reqq/timeout"
)

type fetchOpts struct {
	authURL   string
	user      string
	password  string
	maxActive int
	format    string
	timeout   time.Duration
}

// fetch logs in if asked to, then fetches every URL and writes the
// successful responses to out in the order the URLs were given.
func fetch(ctx context.Context, opts fetchOpts, urls []string, out io.Writer, logger logrus.FieldLogger) error {
	format, err := request.ParseFormat(opts.format)
	if err != nil {
		return errors.Wrap(err, "invalid --format")
	}
	if opts.timeout <= 0 {
		return errors.Errorf("invalid --timeout %v", opts.timeout)
	}

	// The session cookie set by the login applies to every later
	// request.
	jar, err := cookiejar.New(nil)
	if err != nil {
		return errors.Wrap(err, "failed to create cookie jar")
	}
	client := &reqq.Client{
		HTTPDoer:      &http.Client{Jar: jar},
		TimeoutPolicy: timeout.Fixed(opts.timeout),
	}

	if opts.authURL != "" {
		a := &digest.Authenticator{Doer: client, Logger: logger}
		if _, err = a.Authenticate(ctx, opts.authURL, opts.user, opts.password); err != nil {
			return errors.Wrapf(err, "failed to log into %s", opts.authURL)
		}
		logger.WithField("user", opts.user).Info("logged in")
	}

	handlers := &reqq.HandlerGroup{}
	handlers.PushBackAll(reqq.LogHandler(logger))
	s := reqq.NewScheduler(opts.maxActive, &reqq.HTTPTransport{Doer: client})
	s.Handlers = handlers

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		multiE  *multierror.Error
		results = make([]interface{}, len(urls))
		fetched = make([]bool, len(urls))
	)
	cb := reqq.CallbackFuncs{
		Success: func(r *reqq.Result) {
			mu.Lock()
			defer mu.Unlock()
			results[r.Param.(int)] = r.Data
			fetched[r.Param.(int)] = true
			wg.Done()
		},
		Failure: func(r *reqq.Result, err *reqq.TransportError) {
			mu.Lock()
			defer mu.Unlock()
			multiE = multierror.Append(multiE, errors.Wrapf(err, "failed to fetch %s", urls[r.Param.(int)]))
			wg.Done()
		},
	}
	for i, u := range urls {
		wg.Add(1)
		if _, err := s.Submit(u, cb, i, format); err != nil {
			wg.Done()
			mu.Lock()
			multiE = multierror.Append(multiE, errors.Wrapf(err, "invalid URL %s", u))
			mu.Unlock()
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.Cancel()
		return errors.Wrap(ctx.Err(), "interrupted")
	}

	for i, data := range results {
		if !fetched[i] {
			continue
		}
		if err := write(out, data); err != nil {
			multiE = multierror.Append(multiE, err)
		}
	}
	return multiE.ErrorOrNil()
}

func write(out io.Writer, data interface{}) error {
	b, ok := data.([]byte)
	if !ok {
		var err error
		b, err = jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(data, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode response")
		}
	}
	if len(b) == 0 || b[len(b)-1] != '\n' {
		b = append(b, '\n')
	}
	_, err := out.Write(b)
	return errors.Wrap(err, "failed to write response")
}
