package hawk

import (
	"strconv"

	"github.com/pkg/errors"
)

// parseTimestamp parses a signed decimal integer exactly as the "ts"
// Hawk parameter requires: an optional single leading '+' or '-', followed
// by one or more digits. strconv.ParseInt already implements this
// grammar and already distinguishes a syntax error from a range
// (overflow) error via *strconv.NumError, so there's no reason to
// hand-roll the scan; we just remap its two failure modes onto the
// Hawk taxonomy.
func parseTimestamp(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return 0, errors.Wrapf(ErrOverflow, "ts %q", s)
		}
		return 0, errors.Wrapf(ErrTimeValue, "ts %q", s)
	}
	return v, nil
}

// formatTimestamp renders ts as its decimal representation, including
// a leading '-' for negative values.
func formatTimestamp(ts int64) string {
	return strconv.FormatInt(ts, 10)
}

// digitsOf returns the number of bytes formatTimestamp(ts) will
// produce, used to pre-size the base string exactly.
func digitsOf(ts int64) int {
	return len(formatTimestamp(ts))
}
