package hawkhttp

import "github.com/pkg/errors"

var (
	errMissingAuthorization = errors.New("hawkhttp: missing Authorization header")
	errUnknownCredentials   = errors.New("hawkhttp: unknown credentials")
	errInvalidMAC           = errors.New("hawkhttp: MAC mismatch")
	errStaleTimestamp       = errors.New("hawkhttp: stale timestamp")
)
