// Copyright 2026 The reqq Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package digest logs into a web service protected by HTTP Digest access
authentication (RFC 2617) using a single GET.

	a := &digest.Authenticator{
		Doer: &reqq.Client{HTTPDoer: &http.Client{Jar: jar}},
	}
	res, err := a.Authenticate(ctx, "https://catalog.example.com/auth/digest", user, pass)

The first GET is sent without credentials. If the server answers 401
with a Digest challenge, the Authorization header is computed and the
GET is retried exactly once. The challenge must name the MD5 algorithm
explicitly, and offer qop "auth" or no qop at all.

The server usually sets a session cookie on success; share the cookie
jar with the reqq.Client of later requests to keep the session.
*/
package digest
