package hawk

import (
	"strings"
	"time"

	"github.com/jprausch/hawkc/hparse"
	"github.com/pkg/errors"
)

// ParseWWWAuthenticate parses the value of a "WWW-Authenticate"
// challenge header. The scheme must be "Hawk"; recognized parameters
// are "ts" and "tsm". Unrecognized keys (e.g. Hawk's "error"
// parameter) are silently ignored.
func ParseWWWAuthenticate(header string) (TimestampParams, error) {
	var p TimestampParams
	var sawTS, sawTSM bool

	err := hparse.Parse(header,
		func(scheme string) error {
			if !strings.EqualFold(scheme, "Hawk") {
				return errors.Wrapf(ErrBadScheme, "got %q", scheme)
			}
			return nil
		},
		func(key, val string) error {
			switch key {
			case "ts":
				ts, err := parseTimestamp(val)
				if err != nil {
					return err
				}
				p.Timestamp = ts
				sawTS = true
			case "tsm":
				p.MAC = val
				sawTSM = true
			}
			return nil
		},
	)
	if err != nil {
		if errors.Cause(err) == hparse.ErrParse {
			err = errors.Wrap(ErrParse, err.Error())
		}
		return TimestampParams{}, err
	}
	if !sawTS || !sawTSM {
		return TimestampParams{}, errors.Wrap(ErrParse, "missing required field among ts, tsm")
	}
	return p, nil
}

// WWWAuthenticateLen returns the exact number of bytes
// WWWAuthenticate(ts) would produce.
func (s Signer) WWWAuthenticateLen(ts int64) int {
	return len(`Hawk ts="`) + digitsOf(ts) + len(`", tsm="`) + MaxHMACBytesB64(s.Algorithm) + len(`"`)
}

// MaxHMACBytesB64 returns the exact base64 length of a MAC produced by
// alg, i.e. base64.StdEncoding.EncodedLen(alg.Size).
func MaxHMACBytesB64(alg Algorithm) int {
	return ((alg.Size + 2) / 3) * 4
}

// WWWAuthenticate builds a "WWW-Authenticate" challenge carrying ts
// (the server's own notion of now) and tsm, the MAC over it, so a
// client can verify the server isn't lying about its clock before
// trusting it.
func (s Signer) WWWAuthenticate(ts int64) (string, error) {
	base := s.TimestampBaseString(ts)
	mac, err := s.Sign(base)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(`Hawk ts="`) + digitsOf(ts) + len(`", tsm="`) + len(mac) + len(`"`))
	b.WriteString(`Hawk ts="`)
	b.WriteString(formatTimestamp(ts))
	b.WriteString(`", tsm="`)
	b.WriteString(mac)
	b.WriteByte('"')
	return b.String(), nil
}

// ValidateTimestamp recomputes tsm for p.Timestamp and
// fixed-time-compares it against p.MAC, confirming the challenge
// really came from a party that knows the shared secret (and wasn't
// forged to make a client adopt a malicious clock offset).
func (s Signer) ValidateTimestamp(p TimestampParams) (bool, error) {
	base := s.TimestampBaseString(p.Timestamp)
	mac, err := s.Sign(base)
	if err != nil {
		return false, err
	}
	return FixedTimeEqual(mac, p.MAC), nil
}

// UpdateClockOffset validates a WWW-Authenticate header against s and,
// if it checks out, returns the clock offset between p.Timestamp and
// the local clock (apply it to s.ClockOffset to correct future
// Authorization calls). Grounded in the reference Go implementation's
// Auth.UpdateOffset, generalized to return the offset instead of
// mutating a receiver in place.
func (s Signer) UpdateClockOffset(header string) (time.Duration, error) {
	p, err := ParseWWWAuthenticate(header)
	if err != nil {
		return 0, err
	}
	ok, err := s.ValidateTimestamp(p)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, errors.Wrap(ErrCrypto, "WWW-Authenticate tsm does not match")
	}
	return time.Unix(p.Timestamp, 0).Sub(time.Now()), nil
}
