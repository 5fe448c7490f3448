package hawk

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
)

// MaxNonceBytes is the number of random bytes drawn for a nonce,
// matching MAX_NONCE_BYTES in the reference implementation.
const MaxNonceBytes = 6

// NewNonce draws MaxNonceBytes bytes from a cryptographically strong
// source and returns their hex encoding (12 characters). A short read
// from crypto/rand — which in practice only happens if the OS's
// source is unavailable — yields ErrCrypto rather than a weak nonce.
func NewNonce() (string, error) {
	buf := make([]byte, MaxNonceBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(ErrCrypto, "reading nonce randomness: "+err.Error())
	}
	return hex.EncodeToString(buf), nil
}
