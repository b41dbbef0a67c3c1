package domain

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidMask is returned when a mask is not a non-negative integer.
var ErrInvalidMask = errors.New("invalid mask")

// Mask is a raw pylint return code whose bits flag triggered categories.
type Mask uint64

// ParseMask parses a decimal mask argument.
// Values wider than 64 bits are accepted and truncated to their low 64 bits,
// since only the low bits can ever match a category.
func ParseMask(s string) (Mask, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidMask)
	}

	n, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidMask, s)
	}
	if n.Sign() < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidMask, s)
	}

	low := new(big.Int).And(n, new(big.Int).SetUint64(^uint64(0)))
	return Mask(low.Uint64()), nil
}

// Binary returns the mask in base 2 without a prefix.
func (m Mask) Binary() string {
	return strconv.FormatUint(uint64(m), 2)
}
