// Package hawk implements the Hawk HTTP authentication scheme: a
// message-authentication-code based scheme for authenticating HTTP
// requests and responses using a shared secret.
//
// A client signs a request by computing a MAC over a canonical base
// string derived from the request's method, path, host, port and a
// handful of Hawk-specific parameters, then sends the result in an
// "Authorization" request header:
//
//	Authorization: Hawk id="dh37fgj492je", ts="1353832234", nonce="j4h3g2",
//	    ext="some-app-ext-data", mac="6R4rV5iE+NPoym+WwjeHzjAGXUtLNIxmo1vpMofpLAE="
//
// A server verifies the header by parsing it, rebuilding the same base
// string from the request it actually received, and comparing MACs in
// fixed time. Servers also use this package to emit a "WWW-Authenticate"
// challenge carrying a MAC'd timestamp, which lets a client correct its
// clock before retrying:
//
//	WWW-Authenticate: Hawk ts="1353832234", tsm="6R4rV5iE+NPoym+WwjeHzjAGXUtLNIxmo1vpMofpLAE="
//
// Parsing (package hawk/hparse), base64 handling with explicit length
// semantics (package hawk/b64), credential storage (package hawk/store)
// and net/http and Caddy integrations (packages hawk/hawkhttp and
// hawk/caddyhawk) live in their own packages; this package is the
// signing engine and header façade that ties them together.
//
// This package does not compute the optional "hash" payload-body
// parameter, does not parse token68-style Basic credentials, and does
// not cache or replay-check nonces — those are the caller's
// responsibility.
package hawk // import "github.com/jprausch/hawkc"
