package hawk

import (
	"strings"
	"time"

	"github.com/jprausch/hawkc/hparse"
	"github.com/pkg/errors"
)

// ParseAuthorization parses the value of an "Authorization" (or, on
// the client side verifying a response, "Server-Authorization")
// header. The scheme must be "Hawk", case-insensitively; any other
// scheme yields ErrBadScheme. Required fields are id, mac, nonce and
// ts; their absence yields ErrParse. Unrecognized parameter keys are
// silently ignored, for forward compatibility.
//
// Quoted-string escapes are preserved exactly as they appeared in the
// header (per hparse's zero-copy contract); call hparse.Unescape on a
// field if you need it unescaped.
func ParseAuthorization(header string) (AuthParams, error) {
	var p AuthParams
	var sawID, sawMAC, sawNonce, sawTS bool

	err := hparse.Parse(header,
		func(scheme string) error {
			if !strings.EqualFold(scheme, "Hawk") {
				return errors.Wrapf(ErrBadScheme, "got %q", scheme)
			}
			return nil
		},
		func(key, val string) error {
			switch key {
			case "id":
				p.ID = val
				sawID = true
			case "mac":
				p.MAC = val
				sawMAC = true
			case "hash":
				p.Hash = val
			case "nonce":
				p.Nonce = val
				sawNonce = true
			case "app":
				p.App = val
			case "dlg":
				p.Dlg = val
			case "ext":
				p.Ext = val
			case "ts":
				ts, err := parseTimestamp(val)
				if err != nil {
					return err
				}
				p.Timestamp = ts
				sawTS = true
			}
			return nil
		},
	)
	if err != nil {
		if errors.Cause(err) == hparse.ErrParse {
			err = errors.Wrap(ErrParse, err.Error())
		}
		return AuthParams{}, err
	}

	if !sawID || !sawMAC || !sawNonce || !sawTS {
		return AuthParams{}, errors.Wrap(ErrParse, "missing required field among id, mac, nonce, ts")
	}
	return p, nil
}

// ValidateHMAC rebuilds the request base string from s's request
// metadata and p's fields, signs it, and fixed-time-compares the
// result against p.MAC. The returned bool is only meaningful when err
// is nil; a non-nil error means the base string could not be built
// (ErrBaseStringTooLarge) or signing itself failed (e.g. a zero-value
// Signer), not that the MAC was merely wrong.
func (s Signer) ValidateHMAC(p AuthParams) (bool, error) {
	base, err := s.BaseString(p)
	if err != nil {
		return false, err
	}
	mac, err := s.Sign(base)
	if err != nil {
		return false, err
	}
	return FixedTimeEqual(mac, p.MAC), nil
}

// Authorization builds an outbound "Authorization" header value. If
// p.Timestamp is zero it is set to time.Now() plus s.ClockOffset; if
// p.Nonce is empty a fresh one is drawn via NewNonce. The MAC is
// always (re)computed from the current base string, overwriting
// whatever p.MAC held on entry. Field values are written verbatim
// inside quotes without escaping; see serializeAuthorization.
func (s Signer) Authorization(p AuthParams) (string, error) {
	if p.Timestamp == 0 {
		p.Timestamp = time.Now().Add(s.ClockOffset).Unix()
	}
	if p.Nonce == "" {
		nonce, err := NewNonce()
		if err != nil {
			return "", err
		}
		p.Nonce = nonce
	}

	base, err := s.BaseString(p)
	if err != nil {
		return "", err
	}
	mac, err := s.Sign(base)
	if err != nil {
		return "", err
	}
	p.MAC = mac

	return s.serializeAuthorization(p), nil
}

// RequestHeaderLen returns the exact number of bytes Authorization(p)
// would produce for the given, already-fully-populated p (including
// p.MAC) — the Go analogue of
// hawkc_calculate_authorization_header_length. Authorization itself
// calls the equivalent internal sizing before allocating its builder;
// this is exposed for callers who want to pre-size their own buffer.
func (s Signer) RequestHeaderLen(p AuthParams) int {
	n := len(`Hawk id="`) + len(p.ID) + len(`", ts="`) + digitsOf(p.Timestamp) + len(`", nonce="`) + len(p.Nonce) + len(`"`)
	if p.Hash != "" {
		n += len(`, hash="`) + len(p.Hash) + len(`"`)
	}
	if p.Ext != "" {
		n += len(`, ext="`) + len(p.Ext) + len(`"`)
	}
	if p.App != "" {
		n += len(`, app="`) + len(p.App) + len(`"`)
	}
	if p.Dlg != "" {
		n += len(`, dlg="`) + len(p.Dlg) + len(`"`)
	}
	n += len(`, mac="`) + len(p.MAC) + len(`"`)
	return n
}

// serializeAuthorization emits parameters in the fixed order
// id, ts, nonce, [hash,] [ext,] [app,] [dlg,] mac. Field values are
// written verbatim inside quotes: this library does not escape them,
// so callers must supply values that are already safe to embed in a
// quoted-string (no unescaped '"' or '\').
func (s Signer) serializeAuthorization(p AuthParams) string {
	var b strings.Builder
	b.Grow(s.RequestHeaderLen(p))

	b.WriteString(`Hawk id="`)
	b.WriteString(p.ID)
	b.WriteString(`", ts="`)
	b.WriteString(formatTimestamp(p.Timestamp))
	b.WriteString(`", nonce="`)
	b.WriteString(p.Nonce)
	b.WriteByte('"')
	if p.Hash != "" {
		b.WriteString(`, hash="`)
		b.WriteString(p.Hash)
		b.WriteByte('"')
	}
	if p.Ext != "" {
		b.WriteString(`, ext="`)
		b.WriteString(p.Ext)
		b.WriteByte('"')
	}
	if p.App != "" {
		b.WriteString(`, app="`)
		b.WriteString(p.App)
		b.WriteByte('"')
	}
	if p.Dlg != "" {
		b.WriteString(`, dlg="`)
		b.WriteString(p.Dlg)
		b.WriteByte('"')
	}
	b.WriteString(`, mac="`)
	b.WriteString(p.MAC)
	b.WriteByte('"')
	return b.String()
}
