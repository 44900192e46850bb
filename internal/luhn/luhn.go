// Package luhn implements the checksum scheme used for card numbers:
// a trailing check digit computed by doubling every digit at an even
// position (0-based), subtracting 9 from doubled values above 9, and
// summing the results.
package luhn

import (
	"fmt"
	"strconv"
)

const (
	// BodyLen is the number of digits covered by the check digit.
	BodyLen = 15
	// NumberLen is the full card number length, check digit included.
	NumberLen = 16
)

// CheckDigit returns the check digit for a 15-digit card number body.
func CheckDigit(body string) (string, error) {
	if len(body) != BodyLen || !digitsOnly(body) {
		return "", fmt.Errorf("luhn: body must be %d digits, got %q", BodyLen, body)
	}
	d := (10 - sum(body)%10) % 10
	return strconv.Itoa(d), nil
}

// Valid reports whether a full 16-digit card number satisfies the
// checksum relation. Any string of the wrong length or containing a
// non-digit is invalid.
func Valid(number string) bool {
	if len(number) != NumberLen || !digitsOnly(number) {
		return false
	}
	return sum(number)%10 == 0
}

func sum(digits string) int {
	total := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
	}
	return total
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
