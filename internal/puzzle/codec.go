// Package puzzle decodes puzzle records and picks the words worth playing.
package puzzle

import (
	"strings"
)

// Printable ASCII that fits in two decimal digits.
const (
	minCodePoint = 32
	maxCodePoint = 99
)

// Decode turns pairs of decimal digits into the characters with those
// code points, left to right.
func Decode(code string) (string, error) {
	if len(code)%2 != 0 {
		return "", &DecodeError{Kind: MalformedLength, Code: code, Offset: len(code) - 1}
	}

	var b strings.Builder
	b.Grow(len(code) / 2)
	for i := 0; i < len(code); i += 2 {
		d1, d2 := code[i], code[i+1]
		if !isDigit(d1) || !isDigit(d2) {
			return "", &DecodeError{Kind: InvalidCode, Code: code, Offset: i}
		}
		cp := int(d1-'0')*10 + int(d2-'0')
		if cp < minCodePoint {
			return "", &DecodeError{Kind: InvalidCode, Code: code, Offset: i}
		}
		b.WriteByte(byte(cp))
	}
	return b.String(), nil
}

// DecodeWord decodes code and lowercases the result.
func DecodeWord(code string) (string, error) {
	s, err := Decode(code)
	if err != nil {
		return "", err
	}
	return strings.ToLower(s), nil
}

// Encode is the inverse of Decode. Characters outside the two-digit
// printable range cannot be represented.
func Encode(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) * 2)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < minCodePoint || c > maxCodePoint {
			return "", &DecodeError{Kind: InvalidCode, Code: text, Offset: i}
		}
		b.WriteByte('0' + c/10)
		b.WriteByte('0' + c%10)
	}
	return b.String(), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
