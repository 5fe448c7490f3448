package hawk

import (
	"crypto/sha1"
	"crypto/sha256"
	"hash"

	"github.com/pkg/errors"
)

// Algorithm is an immutable record pairing an HMAC hash constructor
// with the name Hawk uses for it on the wire and the resulting MAC
// length in bytes.
//
// The two values below (SHA256, SHA1) are the only instances; there is
// no registration mechanism, matching the static two-entry table in the
// reference implementation.
type Algorithm struct {
	Name string
	New  func() hash.Hash
	Size int
}

// SHA256 is the recommended algorithm; its MAC is 32 bytes.
var SHA256 = Algorithm{Name: "sha256", New: sha256.New, Size: sha256.Size}

// SHA1 is kept for compatibility with older clients; its MAC is 20 bytes.
var SHA1 = Algorithm{Name: "sha1", New: sha1.New, Size: sha1.Size}

// MaxHMACBytes is the longest MAC length any predefined algorithm
// produces, i.e. SHA256.Size. Callers sizing fixed buffers (as the
// reference C implementation's MAX_HMAC_BYTES_B64 does) can use this.
const MaxHMACBytes = sha256.Size

var algorithms = map[string]Algorithm{
	SHA256.Name: SHA256,
	SHA1.Name:   SHA1,
}

// AlgorithmByName looks up an Algorithm by its case-sensitive wire
// name. Unknown names yield ErrUnknownAlgorithm.
func AlgorithmByName(name string) (Algorithm, error) {
	a, ok := algorithms[name]
	if !ok {
		return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return a, nil
}
