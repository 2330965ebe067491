// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package digest

import (
	"strings"

	"golang.org/x/net/http/httpguts"
)

// A Challenge holds the parameters of a WWW-Authenticate Digest
// challenge that the client can answer.
type Challenge struct {
	Realm string
	Nonce string
	// Qop is "auth" if the server offered it, or the empty string if
	// the challenge carried no qop directive, in which case the RFC 2069
	// response form is used.
	Qop string
	// Algorithm is always "MD5".
	Algorithm string
	// Opaque is echoed back unchanged. It may be empty.
	Opaque string
}

// A ProtocolError reports a challenge the client cannot answer.
type ProtocolError struct {
	// Reason describes what is wrong with the challenge.
	Reason string
	// Header is the offending WWW-Authenticate value, if there was one.
	Header string
}

func (err *ProtocolError) Error() string {
	if err.Header == "" {
		return "digest: " + err.Reason
	}
	return "digest: " + err.Reason + ": " + err.Header
}

func protocolError(header, reason string) *ProtocolError {
	return &ProtocolError{Reason: reason, Header: header}
}

// IsDigest reports whether the WWW-Authenticate value h uses the
// Digest scheme. Scheme names are case-insensitive.
func IsDigest(h string) bool {
	scheme, _ := splitScheme(h)
	return strings.EqualFold(scheme, "Digest")
}

// ParseChallenge parses one WWW-Authenticate header value.
//
// The realm, nonce and algorithm parameters are required. The only
// accepted algorithm is MD5; MD5-sess and others are rejected. If a
// qop list is present it must include "auth".
func ParseChallenge(h string) (*Challenge, error) {
	scheme, rest := splitScheme(h)
	if !strings.EqualFold(scheme, "Digest") {
		return nil, protocolError(h, "not a Digest challenge")
	}

	params, ok := parseParams(rest)
	if !ok {
		return nil, protocolError(h, "malformed challenge")
	}

	c := &Challenge{
		Opaque: params["opaque"],
	}
	var present bool
	if c.Realm, present = params["realm"]; !present {
		return nil, protocolError(h, "missing realm")
	}
	if c.Nonce = params["nonce"]; c.Nonce == "" {
		return nil, protocolError(h, "missing nonce")
	}

	switch alg, present := params["algorithm"]; {
	case !present:
		return nil, protocolError(h, "missing algorithm")
	case strings.EqualFold(alg, "MD5"):
		c.Algorithm = "MD5"
	default:
		return nil, protocolError(h, "unsupported algorithm "+alg)
	}

	if qop, present := params["qop"]; present {
		for _, q := range strings.Split(qop, ",") {
			if strings.TrimSpace(q) == "auth" {
				c.Qop = "auth"
				break
			}
		}
		if c.Qop == "" {
			return nil, protocolError(h, "unsupported qop "+qop)
		}
	}

	return c, nil
}

func splitScheme(h string) (scheme, rest string) {
	h = strings.TrimLeft(h, " \t")
	i := strings.IndexAny(h, " \t")
	if i < 0 {
		return h, ""
	}
	return h[:i], h[i+1:]
}

// parseParams parses a comma-separated list of auth-params, each a
// token, '=' and either a token or a quoted-string. Names are folded to
// lower case. The first occurrence of a name wins.
func parseParams(s string) (map[string]string, bool) {
	params := make(map[string]string)
	for {
		s = strings.TrimLeft(s, " \t,")
		if s == "" {
			return params, true
		}

		name := token(s)
		if name == "" {
			return nil, false
		}
		s = strings.TrimLeft(s[len(name):], " \t")
		if !strings.HasPrefix(s, "=") {
			return nil, false
		}
		s = strings.TrimLeft(s[1:], " \t")

		var value string
		if strings.HasPrefix(s, `"`) {
			var ok bool
			value, s, ok = quoted(s)
			if !ok {
				return nil, false
			}
		} else {
			value = token(s)
			if value == "" {
				return nil, false
			}
			s = s[len(value):]
		}

		name = strings.ToLower(name)
		if _, dup := params[name]; !dup {
			params[name] = value
		}

		s = strings.TrimLeft(s, " \t")
		if s != "" && s[0] != ',' {
			return nil, false
		}
	}
}

func token(s string) string {
	for i, r := range s {
		if !httpguts.IsTokenRune(r) {
			return s[:i]
		}
	}
	return s
}

// quoted consumes a quoted-string from the front of s, which must
// start with a double quote.
func quoted(s string) (value, rest string, ok bool) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return b.String(), s[i+1:], true
		case '\\':
			i++
			if i == len(s) {
				return "", "", false
			}
			b.WriteByte(s[i])
		default:
			b.WriteByte(c)
		}
	}
	return "", "", false
}
