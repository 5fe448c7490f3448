// Package b64 wraps encoding/base64 with the explicit-length encode
// and decode operations the Hawk base-string and header builders need
// to pre-size buffers exactly, plus decoding that rejects characters
// outside the alphabet and missing or misplaced padding. As in
// encoding/base64, embedded CR and LF are skipped and unused trailing
// bits are not checked.
package b64

import (
	"encoding/base64"

	"github.com/pkg/errors"
)

// ErrMalformed is wrapped around any error encoding/base64 returns
// during Decode. This package has no dependency on package hawk (it
// would be circular, since hawk imports b64), so callers that need to
// surface a decode failure as the Hawk error taxonomy's Base64Error
// member wrap it as hawk.ErrBase64 themselves; see hawk/store.Insert.
var ErrMalformed = errors.New("b64: malformed input")

// Codec is a base64 variant: standard or URL-safe, always with
// canonical padding.
type Codec struct {
	enc *base64.Encoding
}

// Standard is the RFC 4648 §4 alphabet ("A–Z a–z 0–9 + /"), padded.
var Standard = Codec{enc: base64.StdEncoding}

// URLSafe is the RFC 4648 §5 alphabet ("A–Z a–z 0–9 - _"), padded.
var URLSafe = Codec{enc: base64.URLEncoding}

// EncodedLen returns the exact number of bytes Encode will write for
// an input of n bytes.
func (c Codec) EncodedLen(n int) int { return c.enc.EncodedLen(n) }

// DecodedLen returns the maximum number of bytes Decode could write
// for an encoded input of n bytes. Actual output may be up to two
// bytes shorter, depending on padding; callers that need the exact
// count should use the n returned by Decode itself.
func (c Codec) DecodedLen(n int) int { return c.enc.DecodedLen(n) }

// Encode fills dst with the base64 encoding of src and returns the
// number of bytes written. dst must be at least EncodedLen(len(src))
// bytes.
func (c Codec) Encode(dst, src []byte) int {
	c.enc.Encode(dst, src)
	return c.enc.EncodedLen(len(src))
}

// EncodeToString is a convenience wrapper equivalent to Encode into a
// freshly allocated buffer.
func (c Codec) EncodeToString(src []byte) string {
	return c.enc.EncodeToString(src)
}

// Decode fills dst with the decoded bytes of src and returns the
// number of bytes written, or ErrMalformed if src isn't valid
// canonically-padded base64 for this codec's alphabet.
func (c Codec) Decode(dst, src []byte) (int, error) {
	n, err := c.enc.Decode(dst, src)
	if err != nil {
		return 0, errors.Wrap(ErrMalformed, err.Error())
	}
	return n, nil
}

// DecodeString is a convenience wrapper equivalent to Decode into a
// freshly allocated buffer.
func (c Codec) DecodeString(s string) ([]byte, error) {
	out, err := c.enc.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	return out, nil
}
