package helper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Roll numbers are center-scoped keypad identifiers. "2", "02" and "002"
// are the same identity; the canonical form is 3 digits, zero padded.

const rollNumberWidth = 3

var ErrInvalidRollNumber = errors.New("invalid roll number")

// NormalizeRollNumber canonicalizes a raw roll entry to its zero-padded form.
// Known separators (spaces, dashes, dots) are stripped before parsing; anything
// else non-numeric, an empty string, or a value above 999 is rejected.
func NormalizeRollNumber(raw string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '.':
			return -1
		}
		return r
	}, raw)

	if cleaned == "" {
		return "", ErrInvalidRollNumber
	}

	n, err := strconv.ParseUint(cleaned, 10, 32)
	if err != nil {
		return "", ErrInvalidRollNumber
	}
	if n > 999 {
		return "", ErrInvalidRollNumber
	}

	return fmt.Sprintf("%0*d", rollNumberWidth, n), nil
}

// IsCanonicalRollNumber reports whether s is already in canonical form.
func IsCanonicalRollNumber(s string) bool {
	norm, err := NormalizeRollNumber(s)
	return err == nil && norm == s
}
