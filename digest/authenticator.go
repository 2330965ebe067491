// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package digest

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/metacat/reqq"
	"github.com/metacat/reqq/request"
)

// A Result describes a successful login.
type Result struct {
	// Execution is the final GET, whose response has a 2XX status.
	Execution *request.Execution
	// Challenge is the challenge that was answered, or nil if the
	// server let the first, unauthenticated GET through.
	Challenge *Challenge
}

// Retried reports whether the login needed a second, authenticated
// GET.
func (r *Result) Retried() bool {
	return r.Challenge != nil
}

// An Authenticator performs Digest logins. Its zero value is ready to
// use. An Authenticator is safe for concurrent use by multiple
// goroutines.
type Authenticator struct {
	// Doer sends the GETs. If nil, a zero value reqq.Client is used,
	// which does not keep cookies.
	Doer reqq.Doer
	// Cnonce chooses the client nonce. If nil, RandomCnonce is used.
	Cnonce CnonceFunc
	// Logger receives debug messages about each step. If nil, nothing
	// is logged.
	Logger logrus.FieldLogger
}

// Authenticate logs into url as username.
//
// The returned error is a *ProtocolError if the server's challenge
// cannot be answered, or a *reqq.TransportError if a GET failed or the
// server rejected the credentials. Any other error means url is
// invalid.
func (a *Authenticator) Authenticate(ctx context.Context, url, username, password string) (*Result, error) {
	p, err := request.NewPlanWithContext(ctx, "GET", url)
	if err != nil {
		return nil, err
	}
	log := a.logger().WithField("url", url)

	e := a.do(p)
	log.WithField("status", e.StatusCode()).Debug("digest: unauthenticated attempt done")
	if e.Successful() {
		return &Result{Execution: e}, nil
	}
	if e.Err != nil || e.StatusCode() != 401 {
		return nil, reqq.NewTransportError(e)
	}

	c, err := challenge(e)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"realm": c.Realm,
		"qop":   c.Qop,
	}).Debug("digest: answering challenge")

	cnonce := a.Cnonce
	if cnonce == nil {
		cnonce = RandomCnonce
	}
	p2, err := request.NewPlanWithContext(ctx, "GET", url)
	if err != nil {
		return nil, err
	}
	p2.Header.Set("Authorization", c.Authorization(username, password, p2.RequestURI(), cnonce(c)))

	e = a.do(p2)
	log.WithField("status", e.StatusCode()).Debug("digest: authenticated attempt done")
	if !e.Successful() {
		return nil, reqq.NewTransportError(e)
	}
	return &Result{Execution: e, Challenge: c}, nil
}

// Go starts Authenticate on a new goroutine and reports its outcome to
// done.
func (a *Authenticator) Go(ctx context.Context, url, username, password string, done func(*Result, error)) {
	go func() {
		done(a.Authenticate(ctx, url, username, password))
	}()
}

func (a *Authenticator) do(p *request.Plan) *request.Execution {
	d := a.Doer
	if d == nil {
		d = &reqq.Client{}
	}
	e, err := d.Do(p)
	if e == nil {
		e = &request.Execution{Plan: p, Err: err}
	}
	return e
}

func (a *Authenticator) logger() logrus.FieldLogger {
	if a.Logger != nil {
		return a.Logger
	}
	return discard
}

var discard = &logrus.Logger{
	Out:       io.Discard,
	Formatter: new(logrus.TextFormatter),
	Hooks:     make(logrus.LevelHooks),
	Level:     logrus.PanicLevel,
}

// challenge picks the first Digest challenge of a 401 response.
func challenge(e *request.Execution) (*Challenge, error) {
	values := e.Header().Values("WWW-Authenticate")
	if len(values) == 0 {
		return nil, protocolError("", "missing WWW-Authenticate header")
	}
	for _, v := range values {
		if IsDigest(v) {
			return ParseChallenge(v)
		}
	}
	return nil, protocolError(values[0], "no Digest challenge")
}
