package types

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	digitTab [256]byte
	hexTab   [256]byte
)

func init() {
	// 0-9
	for c := byte('0'); c <= '9'; c++ {
		digitTab[c] = 1
		hexTab[c] = 1
	}
	// a-f, A-F
	for c := byte('a'); c <= 'f'; c++ {
		hexTab[c] = 1
	}
	for c := byte('A'); c <= 'F'; c++ {
		hexTab[c] = 1
	}
}

// IsHexByteString returns true if the string is a hexadecimal string (satisfying the conditions above)
// and its length is even (i.e., represents bytes).
func IsHexByteString(s string) bool {
	if len(s) < 2 || !strings.HasPrefix(s, "0x") {
		return false
	}

	s = s[2:]

	// check even length
	if (len(s) & 1) != 0 {
		return false
	}
	if len(s) == 0 { // empty is not allowed
		return false
	}
	for i := 0; i < len(s); i++ {
		if hexTab[s[i]] == 0 {
			return false
		}
	}
	return true
}

// IsNumericString returns true if s contains only digits [0-9].
// An empty string returns false.
func IsNumericString(s string) bool {
	if len(s) == 0 { // empty is not allowed
		return false
	}
	for i := 0; i < len(s); i++ {
		if digitTab[s[i]] == 0 {
			return false
		}
	}
	return true
}

// ParseUint64 parses a decimal or `0x`-prefixed hexadecimal unsigned 64-bit integer.
func ParseUint64(s string) (uint64, error) {
	if IsHexByteString(s) {
		return strconv.ParseUint(s[2:], 16, 64)
	} else if IsNumericString(s) {
		return strconv.ParseUint(s, 10, 64)
	}
	return 0, fmt.Errorf("invalid unsigned integer: %v", s)
}

// ParseBasisPoints parses an unsigned 16-bit basis-point value.
// The range [0, 10000] is not checked here.
func ParseBasisPoints(s string) (uint16, error) {
	if !IsNumericString(s) {
		return 0, fmt.Errorf("invalid basis points: %v", s)
	}
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
