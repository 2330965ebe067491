// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"syscall"
)

// A Category is the category of a transport error as reported by
// Categorize.
//
// Not means the error gives no reason to believe that a later attempt
// would go any better. Timeout, ConnRefused and ConnReset are transient:
// a later attempt has a fair chance of success. Canceled is neither: the
// request was abandoned on purpose, and nobody is waiting for it.
type Category int

const (
	// Not indicates a nil error, or any non-transient error.
	Not Category = iota
	// Timeout indicates a client-side timeout. Categorize returns
	// Timeout if the error, or any error it wraps, has a Timeout method
	// reporting true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED). A catalog server being restarted refuses
	// connections until it is listening again.
	ConnRefused
	// ConnReset indicates the remote host reset an established
	// connection (syscall.ECONNRESET), typically a load balancer or a
	// server going down in the middle of a response.
	ConnReset
	// Canceled indicates the request context was cancelled, for example
	// because the scheduler that issued the request was cancelled.
	Canceled
)

var categoryNames = []string{
	"Not",
	"Timeout",
	"ConnRefused",
	"ConnReset",
	"Canceled",
}

// String returns the name of the category.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Category(?)"
	}
	return categoryNames[c]
}

// Transient reports whether the category is one of the transient
// categories Timeout, ConnRefused or ConnReset.
func (c Category) Transient() bool {
	return c == Timeout || c == ConnRefused || c == ConnReset
}

// Categorize returns the category of err. A nil error is Not.
//
// Wrapped causes are examined, so an *url.Error wrapping a *net.OpError
// wrapping syscall.ECONNRESET is ConnReset. Cancellation takes priority
// over everything else, and a timeout takes priority over the errno
// checks. Temporary methods are ignored.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	if errors.Is(err, context.Canceled) {
		return Canceled
	}

	var t hasTimeout
	if errors.As(err, &t) && t.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

type hasTimeout interface {
	Timeout() bool
}
