// Package base58 implements the base-58 numeral system used by Flickr's
// short photo URLs (flic.kr/p/...).
//
// The alphabet deliberately excludes the visually ambiguous characters
// 0, O, I and l.
package base58

import (
	"fmt"
	"math/big"
)

// Alphabet is the base-58 digit set, ordered by digit value.
const Alphabet = "123456789abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

var digitValues = func() map[rune]int64 {
	m := make(map[rune]int64, len(Alphabet))
	for i, r := range Alphabet {
		m[r] = int64(i)
	}
	return m
}()

// InvalidDigitError is returned when a token contains a character outside
// the base-58 alphabet.
type InvalidDigitError struct {
	Token string
	Digit rune
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("base58: invalid digit %q in token %q", e.Digit, e.Token)
}

// IsBase58 reports whether every character of s is in the alphabet.
// The empty string is not a valid token.
func IsBase58(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := digitValues[r]; !ok {
			return false
		}
	}
	return true
}

var base = big.NewInt(int64(len(Alphabet)))

// Decode interprets token as a big-endian base-58 numeral and returns the
// decimal representation, e.g. the photo ID encoded in a short URL.
// Arbitrary-precision arithmetic keeps long tokens exact.
func Decode(token string) (string, error) {
	if token == "" {
		return "", &InvalidDigitError{Token: token}
	}

	n := new(big.Int)
	digit := new(big.Int)
	for _, r := range token {
		v, ok := digitValues[r]
		if !ok {
			return "", &InvalidDigitError{Token: token, Digit: r}
		}
		n.Mul(n, base)
		n.Add(n, digit.SetInt64(v))
	}
	return n.String(), nil
}

// Encode is the inverse of Decode: it turns a decimal ID into the token
// that would appear in a short URL.
func Encode(id string) (string, error) {
	n, ok := new(big.Int).SetString(id, 10)
	if !ok || n.Sign() < 0 {
		return "", fmt.Errorf("base58: not a numeric id: %q", id)
	}

	if n.Sign() == 0 {
		return string(Alphabet[0]), nil
	}

	var digits []byte
	mod := new(big.Int)
	for n.Sign() > 0 {
		n.DivMod(n, base, mod)
		digits = append(digits, Alphabet[mod.Int64()])
	}

	// digits are accumulated least significant first
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}
