// Package hparse is a permissive, zero-copy parser for HTTP
// authentication header values: a scheme token followed by a
// comma-separated list of key="value" parameters (RFC 7235
// challenge/credentials syntax, minus token68).
//
// It never allocates beyond what the caller's own callbacks allocate:
// every key and value handed to a callback is a sub-slice of the
// input string. Quoted values keep their backslash escapes; use
// Unescape to strip them once a value has been copied out.
//
// A hand-rolled state machine is used here rather than text/scanner
// because scanner.Scanner unescapes quoted strings in place (losing
// the zero-copy, escapes-preserved contract) and its Ident token class
// doesn't recognize several RFC 7230 tchars this grammar allows
// (`!#$%&'*+-.^_`|~`).
package hparse

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrParse is wrapped with a position and a short reason for every
// parse failure: unexpected characters, an unclosed quote, a missing
// "=", or trailing garbage.
var ErrParse = errors.New("hparse: parse error")

// SchemeHandler is invoked exactly once, with the scheme token.
type SchemeHandler func(scheme string) error

// ParamHandler is invoked once per key=value pair, in the order they
// appear in the input.
type ParamHandler func(key, value string) error

func isTokenChar(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}

func isWS(b byte) bool { return b == ' ' || b == '\t' }

// Parse runs the state machine
//
//	Start → Scheme → WS → ParamKey → BeforeEq → AfterEq → Token|Quoted → AfterVal → Comma → ParamKey …
//
// over value, calling onScheme once and onParam once per parameter.
// Either handler may be nil. A non-nil error from a handler aborts
// parsing immediately and is returned unwrapped; syntax errors are
// returned wrapped in ErrParse.
func Parse(value string, onScheme SchemeHandler, onParam ParamHandler) error {
	i, n := 0, len(value)

	for i < n && isWS(value[i]) {
		i++
	}

	start := i
	for i < n && isTokenChar(value[i]) {
		i++
	}
	if i == start {
		return errors.Wrapf(ErrParse, "missing scheme token at position %d", i)
	}
	scheme := value[start:i]
	if onScheme != nil {
		if err := onScheme(scheme); err != nil {
			return err
		}
	}

	wsSeen := 0
	for i < n && isWS(value[i]) {
		i++
		wsSeen++
	}
	if i == n {
		return nil // scheme with no parameters
	}
	if wsSeen == 0 {
		return errors.Wrapf(ErrParse, "expected whitespace after scheme at position %d", i)
	}

	for {
		start = i
		for i < n && isTokenChar(value[i]) {
			i++
		}
		if i == start {
			return errors.Wrapf(ErrParse, "expected parameter name at position %d", i)
		}
		key := value[start:i]

		for i < n && isWS(value[i]) {
			i++
		}
		if i == n || value[i] != '=' {
			return errors.Wrapf(ErrParse, "expected '=' at position %d", i)
		}
		i++

		for i < n && isWS(value[i]) {
			i++
		}

		var val string
		if i < n && value[i] == '"' {
			i++
			vstart := i
			closed := false
			for i < n {
				if value[i] == '\\' && i+1 < n {
					i += 2
					continue
				}
				if value[i] == '"' {
					closed = true
					break
				}
				i++
			}
			if !closed {
				return errors.Wrapf(ErrParse, "unclosed quote starting at position %d", vstart-1)
			}
			val = value[vstart:i]
			i++
		} else {
			vstart := i
			for i < n && isTokenChar(value[i]) {
				i++
			}
			if i == vstart {
				return errors.Wrapf(ErrParse, "expected value at position %d", i)
			}
			val = value[vstart:i]
		}

		if onParam != nil {
			if err := onParam(key, val); err != nil {
				return err
			}
		}

		for i < n && isWS(value[i]) {
			i++
		}
		if i == n {
			return nil
		}
		if value[i] != ',' {
			return errors.Wrapf(ErrParse, "expected ',' at position %d", i)
		}
		i++
		for i < n && isWS(value[i]) {
			i++
		}
		if i == n {
			return errors.Wrapf(ErrParse, "trailing comma at position %d", i)
		}
	}
}

// Unescape strips backslash escapes from a quoted-string value as
// returned by Parse. Parse itself never does this; it is left to the
// caller per the zero-copy contract.
func Unescape(quoted string) string {
	if !strings.ContainsRune(quoted, '\\') {
		return quoted
	}
	var b strings.Builder
	b.Grow(len(quoted))
	for i := 0; i < len(quoted); i++ {
		if quoted[i] == '\\' && i+1 < len(quoted) {
			i++
		}
		b.WriteByte(quoted[i])
	}
	return b.String()
}
