// Package hawkhttp wires package hawk and package store into a
// net/http middleware: it protects a handler by validating incoming
// "Authorization" headers and, on failure, emits a "WWW-Authenticate"
// challenge carrying a signed server timestamp.
//
// Grounded in the teacher's setup_else.go NewHandler/Handler.ServeHTTP
// shape (there: protect an upload destination; here: protect an
// arbitrary http.Handler) and in tent-hawk-go's extractHostPort and
// MaxTimestampSkew, generalized from that package's single global
// credential lookup to package store's CredentialStore.
package hawkhttp

import (
	"net"
	"net/http"
	"time"

	"github.com/jprausch/hawkc"
	"github.com/jprausch/hawkc/store"
)

// MaxTimestampSkew bounds how far apart a request's "ts" and the
// server's clock may be before the request is rejected as stale. A
// package variable, not a constant, so tests can tighten or loosen it
// (mirrors tent-hawk-go's package-level MaxTimestampSkew).
var MaxTimestampSkew = time.Minute

// Now stands in for time.Now so tests can inject a fixed clock.
var Now = time.Now

// Handler protects Next, validating each request's Hawk "Authorization"
// header against credentials resolved via Lookup before forwarding.
type Handler struct {
	Lookup store.LookupFunc
	Next   http.Handler
}

// NewHandler returns a Handler wrapping next. lookup resolves a Hawk
// id to its Credentials; see package store.
func NewHandler(lookup store.LookupFunc, next http.Handler) *Handler {
	return &Handler{Lookup: lookup, Next: next}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code, err := Authenticate(r, h.Lookup, MaxTimestampSkew)
	if err != nil {
		if code == http.StatusUnauthorized || code == http.StatusForbidden {
			w.Header().Set("WWW-Authenticate", challenge(r, h.Lookup))
		}
		http.Error(w, err.Error(), code)
		return
	}
	h.Next.ServeHTTP(w, r)
}

// Authenticate validates r's Hawk "Authorization" header against
// credentials resolved via lookup, rejecting timestamps more than
// tolerance away from Now(). It is the shared core of Handler and of
// caddyhawk's httpserver.Handler adapter, which needs the (code, err)
// pair without net/http's write-response side effect.
func Authenticate(r *http.Request, lookup store.LookupFunc, tolerance time.Duration) (int, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return http.StatusUnauthorized, errMissingAuthorization
	}

	p, err := hawk.ParseAuthorization(header)
	if err != nil {
		return http.StatusBadRequest, err
	}

	creds, ok := lookup(p.ID)
	if !ok {
		return http.StatusForbidden, errUnknownCredentials
	}

	host, port := extractHostPort(r)
	path := r.URL.Path
	if r.URL.RawQuery != "" {
		path += "?" + r.URL.RawQuery
	}
	s := hawk.NewSigner(creds.Algorithm, creds.Key, r.Method, path, host, port)

	valid, err := s.ValidateHMAC(p)
	if err != nil {
		return http.StatusInternalServerError, err
	}
	if !valid {
		return http.StatusForbidden, errInvalidMAC
	}

	skew := Now().Unix() - p.Timestamp
	if abs(skew) > int64(tolerance/time.Second) {
		return http.StatusUnauthorized, errStaleTimestamp
	}

	return http.StatusOK, nil
}

// Challenge builds a best-effort WWW-Authenticate value for r: if its
// id resolved to known credentials, tsm is signed with them (only
// that party can verify it); otherwise the bare scheme is returned,
// since no secret is available to sign anything with.
func Challenge(r *http.Request, lookup store.LookupFunc) string {
	return challenge(r, lookup)
}

func challenge(r *http.Request, lookup store.LookupFunc) string {
	header := r.Header.Get("Authorization")
	if header != "" {
		if p, err := hawk.ParseAuthorization(header); err == nil {
			if creds, ok := lookup(p.ID); ok {
				s := hawk.NewSigner(creds.Algorithm, creds.Key, r.Method, r.URL.Path, r.Host, "")
				if value, err := s.WWWAuthenticate(Now().Unix()); err == nil {
					return value
				}
			}
		}
	}
	return "Hawk"
}

func extractHostPort(r *http.Request) (host, port string) {
	host = r.Host
	if h, p, err := net.SplitHostPort(r.Host); err == nil {
		host, port = h, p
	}
	if port == "" {
		if r.TLS != nil {
			port = "443"
		} else {
			port = "80"
		}
	}
	return host, port
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
