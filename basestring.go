package hawk

import (
	"strings"

	"github.com/pkg/errors"
)

// MaxBaseStringLen is the hard dynamic cap on a computed base
// string's length. A request whose base string would exceed this
// (almost always because of an attacker-controlled, absurdly long
// path) is rejected with ErrBaseStringTooLarge before any buffer is
// allocated — the Go analogue of the reference implementation's
// MAX_DYN_BASE_BUFFER_SIZE defense against oversized-URL denial of
// service.
const MaxBaseStringLen = 2048

// staticBaseStringHint mirrors the reference's BASE_BUFFER_SIZE: below
// this, strings.Builder.Grow never needs to reallocate. It is not a
// hard limit — only a sizing hint.
const staticBaseStringHint = 512

const headerVersion = "1"

// BaseStringLen returns the exact number of bytes BaseString(p) would
// produce, without building it. Useful for callers pre-sizing their
// own buffers, and independently tested against BaseString's actual
// output (spec: size precomputation exactness).
func (s Signer) BaseStringLen(p AuthParams) int {
	n := len("hawk.") + len(headerVersion) + len(".header\n")
	n += digitsOf(p.Timestamp) + 1
	n += len(p.Nonce) + 1
	n += len(s.Method) + 1
	n += len(s.Path) + 1
	n += len(s.Host) + 1
	n += len(s.Port) + 1
	n += len(p.Hash) + 1
	n += len(p.Ext) + 1
	if p.App != "" {
		n += len(p.App) + 1
		n += len(p.Dlg) + 1
	}
	return n
}

// BaseString builds the canonical Hawk request base string (the input
// to HMAC) for p against s's request metadata. Lines are always
// LF-terminated, never CRLF; host is used as stored on s (already
// lowercased by NewSigner); method is used verbatim. ErrBaseStringTooLarge
// is returned, without allocating a builder, if the result would
// exceed MaxBaseStringLen.
func (s Signer) BaseString(p AuthParams) (string, error) {
	n := s.BaseStringLen(p)
	if n > MaxBaseStringLen {
		return "", errors.Wrapf(ErrBaseStringTooLarge, "base string would be %d bytes, max %d", n, MaxBaseStringLen)
	}

	var b strings.Builder
	if n > staticBaseStringHint {
		b.Grow(n)
	} else {
		b.Grow(staticBaseStringHint)
	}

	b.WriteString("hawk.")
	b.WriteString(headerVersion)
	b.WriteString(".header\n")
	b.WriteString(formatTimestamp(p.Timestamp))
	b.WriteByte('\n')
	b.WriteString(p.Nonce)
	b.WriteByte('\n')
	b.WriteString(s.Method)
	b.WriteByte('\n')
	b.WriteString(s.Path)
	b.WriteByte('\n')
	b.WriteString(s.Host)
	b.WriteByte('\n')
	b.WriteString(s.Port)
	b.WriteByte('\n')
	b.WriteString(p.Hash)
	b.WriteByte('\n')
	b.WriteString(p.Ext)
	b.WriteByte('\n')
	if p.App != "" {
		b.WriteString(p.App)
		b.WriteByte('\n')
		b.WriteString(p.Dlg)
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// TimestampBaseStringLen returns the exact length of
// TimestampBaseString(ts), matching TS_BASE_BUFFER_SIZE's role in the
// reference implementation (there, a fixed 30-byte static buffer; here,
// an exact precomputation).
func (s Signer) TimestampBaseStringLen(ts int64) int {
	return len("hawk.") + len(headerVersion) + len(".ts\n") + digitsOf(ts) + 1
}

// TimestampBaseString builds the canonical base string used to sign a
// WWW-Authenticate challenge's timestamp.
func (s Signer) TimestampBaseString(ts int64) string {
	var b strings.Builder
	b.Grow(s.TimestampBaseStringLen(ts))
	b.WriteString("hawk.")
	b.WriteString(headerVersion)
	b.WriteString(".ts\n")
	b.WriteString(formatTimestamp(ts))
	b.WriteByte('\n')
	return b.String()
}
