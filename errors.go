package hawk

import (
	"net/http"

	"github.com/pkg/errors"
)

// Sentinel errors, one per taxonomy member from the Hawk specification
// except NoMemory, which has no Go counterpart.
// Wrap these with github.com/pkg/errors.Wrap/Wrapf to attach a
// position or field name; recover the sentinel with errors.Cause.
var (
	// ErrParse is returned for malformed header syntax or a missing
	// required field.
	ErrParse = errors.New("hawk: parse error")

	// ErrBadScheme is returned when the scheme token is not "Hawk".
	ErrBadScheme = errors.New("hawk: scheme must be Hawk")

	// ErrTokenValidation is reserved for higher-level validators; this
	// library never returns it itself.
	ErrTokenValidation = errors.New("hawk: token validation error")

	// ErrUnknownAlgorithm is returned by AlgorithmByName for an
	// unrecognized name.
	ErrUnknownAlgorithm = errors.New("hawk: unknown algorithm")

	// ErrCrypto is returned when an HMAC or RNG primitive fails.
	ErrCrypto = errors.New("hawk: crypto error")

	// ErrTimeValue is returned when a "ts" parameter is not a valid
	// signed decimal integer.
	ErrTimeValue = errors.New("hawk: invalid time value")

	// ErrBaseStringTooLarge is returned when the computed base string
	// would exceed MaxBaseStringLen.
	ErrBaseStringTooLarge = errors.New("hawk: base string too large")

	// ErrBase64 is returned for malformed base64 input.
	ErrBase64 = errors.New("hawk: malformed base64")

	// ErrOverflow is returned when an integer computation would not
	// fit the platform's signed-seconds type.
	ErrOverflow = errors.New("hawk: integer overflow")

	// ErrGeneric covers anything not otherwise classified.
	ErrGeneric = errors.New("hawk: error")
)

// AuthError adds a "what HTTP status should this become" hint to an
// error, the way a server-side caller (hawkhttp, caddyhawk) needs.
//
// Grounded in signature.auth/errors.go's badRequestError /
// unauthorizedError / forbiddenError triad, generalized to wrap an
// arbitrary cause instead of being a bare string type.
type AuthError interface {
	error

	// SuggestedResponseCode gives a HTTP status code.
	SuggestedResponseCode() int
}

type authError struct {
	cause error
	code  int
}

func (e *authError) Error() string              { return e.cause.Error() }
func (e *authError) Cause() error               { return e.cause }
func (e *authError) Unwrap() error              { return e.cause }
func (e *authError) SuggestedResponseCode() int { return e.code }

// AsAuthError classifies err into an AuthError using the Hawk error
// taxonomy's cause, defaulting to 400 Bad Request for anything that
// isn't specifically an authentication or authorization failure.
func AsAuthError(err error) AuthError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(AuthError); ok {
		return ae
	}

	code := http.StatusBadRequest
	switch errors.Cause(err) {
	case ErrBadScheme:
		code = http.StatusUnauthorized
	case ErrUnknownAlgorithm, ErrCrypto:
		code = http.StatusInternalServerError
	}
	return &authError{cause: err, code: code}
}

// WithResponseCode wraps err so that AsAuthError reports code instead
// of inferring one from the taxonomy. Used by callers (hawkhttp) that
// know more than the error taxonomy does, e.g. "credentials not found"
// should be 401 regardless of how ValidateHMAC failed internally.
func WithResponseCode(err error, code int) AuthError {
	if err == nil {
		return nil
	}
	return &authError{cause: err, code: code}
}
