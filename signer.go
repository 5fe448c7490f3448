package hawk

import (
	"crypto/hmac"
	"time"

	"github.com/jprausch/hawkc/b64"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercaser performs Unicode-aware lowercasing of the request host,
// per spec: internationalized hostnames don't always fold correctly
// under strings.ToLower. Grounded in the teacher's use of
// golang.org/x/text (there, unicode/norm for filenames; here, cases
// for hostnames — see DESIGN.md for the swap).
var lowercaser = cases.Lower(language.Und)

// Signer is the per-relationship working set: a shared secret, the
// algorithm it's used with, and the request metadata that feeds the
// base string. It is an immutable value once constructed and is safe
// for concurrent use by multiple goroutines without synchronization —
// unlike the C HawkcContext, there is no allocator hook or mutable
// error slot to race on.
type Signer struct {
	Algorithm Algorithm
	Password  []byte

	Method string
	Path   string
	Host   string
	Port   string

	// ClockOffset is added to time.Now() when Authorization computes
	// an outbound timestamp, for client-side clock correction learned
	// from a prior WWW-Authenticate challenge (see UpdateClockOffset).
	ClockOffset time.Duration
}

// NewSigner builds a Signer for the given algorithm, shared secret and
// request identity. host is lowercased per the base-string
// specification; callers need not do this themselves.
func NewSigner(alg Algorithm, password []byte, method, path, host, port string) Signer {
	return Signer{
		Algorithm: alg,
		Password:  password,
		Method:    method,
		Path:      path,
		Host:      lowercaser.String(host),
		Port:      port,
	}
}

// WithAlgorithmName is a convenience constructor that looks up alg by
// name (see AlgorithmByName) before delegating to NewSigner.
func WithAlgorithmName(alg string, password []byte, method, path, host, port string) (Signer, error) {
	a, err := AlgorithmByName(alg)
	if err != nil {
		return Signer{}, err
	}
	return NewSigner(a, password, method, path, host, port), nil
}

// Sign computes HMAC(Password, base) under s.Algorithm and returns its
// standard base64 encoding.
func (s Signer) Sign(base string) (string, error) {
	if s.Algorithm.New == nil {
		return "", errors.Wrap(ErrUnknownAlgorithm, "zero-value Signer")
	}
	mac := hmac.New(s.Algorithm.New, s.Password)
	// hash.Hash.Write never returns an error; the interface retains it
	// only for io.Writer compatibility.
	if _, err := mac.Write([]byte(base)); err != nil {
		return "", errors.Wrap(ErrCrypto, err.Error())
	}
	sum := mac.Sum(nil)
	return b64.Standard.EncodeToString(sum), nil
}

// FixedTimeEqual reports whether a and b are byte-for-byte equal,
// taking time independent of where (or whether) they first differ.
// Unequal-length inputs are reported unequal without inspecting their
// content, matching the reference's requirement that the comparator
// never short-circuit on content while still rejecting mismatched
// lengths outright (a length check is not a content short-circuit).
func FixedTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := 0; i < len(a); i++ {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
