package input

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberPattern matches unsigned decimal notation: digits, optional
// fraction, optional exponent.
var numberPattern = regexp.MustCompile(`^(\d*)(?:\.(\d*))?(?:[eE]([+-]?\d+))?$`)

// ValidateDigits reports whether s is a non-empty string of decimal digits.
func ValidateDigits(s string) error {
	if !isDigits(s) {
		return fmt.Errorf("%w: %q", ErrBadOperand, s)
	}

	return nil
}

// NormalizeOperand converts a typed or uploaded number into a digit string.
//
// Accepted forms:
//   - plain digits, returned unchanged (leading zeros kept): "0012"
//   - an optional leading '+' and surrounding spaces: " +12 "
//   - integral decimal or exponent notation, canonicalised: "1.5e3" → "1500"
//
// Negative values, fractions ("1.5"), hex and empty strings are rejected
// with ErrBadOperand. Conversion is exact; no float64 is involved.
func NormalizeOperand(s string) (string, error) {
	t := strings.TrimPrefix(strings.TrimSpace(s), "+")
	if isDigits(t) {
		return t, nil
	}

	m := numberPattern.FindStringSubmatch(t)
	if m == nil || (m[1] == "" && m[2] == "") {
		return "", fmt.Errorf("%w: %q", ErrBadOperand, s)
	}

	exp := 0
	if m[3] != "" {
		e, err := strconv.Atoi(m[3])
		if err != nil || e > maxExponent || e < -maxExponent {
			return "", fmt.Errorf("%w: exponent out of range in %q", ErrBadOperand, s)
		}
		exp = e
	}

	// value = digits · 10^exp
	digits := m[1] + m[2]
	exp -= len(m[2])
	if exp >= 0 {
		digits += strings.Repeat("0", exp)
	} else {
		k := -exp
		if k > len(digits) {
			digits = strings.Repeat("0", k-len(digits)) + digits
		}
		if strings.Trim(digits[len(digits)-k:], "0") != "" {
			return "", fmt.Errorf("%w: %q is not an integer", ErrBadOperand, s)
		}
		digits = digits[:len(digits)-k]
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}

	return digits, nil
}

// NormalizeOperands normalizes both operands of a multiplication.
func NormalizeOperands(x, y string) (Operands, error) {
	nx, err := NormalizeOperand(x)
	if err != nil {
		return Operands{}, fmt.Errorf("x: %w", err)
	}
	ny, err := NormalizeOperand(y)
	if err != nil {
		return Operands{}, fmt.Errorf("y: %w", err)
	}

	return Operands{X: nx, Y: ny}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
