package bstviz

import (
	"math"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseValues splits raw on commas and parses each token as an integer.
// Tokens that do not start with an integer are dropped. Returns
// ErrEmptyInput if nothing survives.
func ParseValues(raw string) ([]int, error) {
	return ParseTokens(strings.Split(raw, ","))
}

// ParseTokens is ParseValues for pre-split input.
func ParseTokens(tokens []string) ([]int, error) {
	values := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := parseLeadingInt(tok); ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	return values, nil
}

// ParseSearchValue parses a single search term.
func ParseSearchValue(raw string) (int, error) {
	v, ok := parseLeadingInt(raw)
	if !ok {
		return 0, errors.Wrapf(ErrInvalidSearchValue, "%q", raw)
	}
	return v, nil
}

// parseLeadingInt reads an optionally signed integer from the start of s
// after trimming surrounding whitespace, ignoring anything after the digits:
// "12abc" is 12, "3.7" is 3, "abc" fails. A "0x" or "0X" prefix switches to
// hexadecimal ("0x1F" is 31, "0x" alone fails). Values that overflow int
// fail.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	const limit = uint64(math.MaxInt) + 1
	var n uint64
	digits := 0
	for ; digits < len(s); digits++ {
		d, ok := digitValue(s[digits])
		if !ok || d >= base {
			break
		}
		if n > (limit-d)/base {
			return 0, false
		}
		n = n*base + d
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		return int(-n), true
	}
	if n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

func digitValue(c byte) (uint64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0'), true
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10, true
	}
	return 0, false
}
