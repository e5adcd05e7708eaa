package mysha

import (
	"fmt"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"
)

// The engine works on bit strings: ASCII '0'/'1' characters, most
// significant bit first. Normalization turns each input kind into that
// canonical form before padding.

// Signed 128-bit bounds for the Decimal input kind.
var (
	decimalMax = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	decimalMin = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	two128     = new(big.Int).Lsh(big.NewInt(1), 128)
)

func normalize(message string, kind InputKind) (string, error) {
	switch kind {
	case Text:
		return textBits(message), nil
	case Binary:
		if err := validateBits(message); err != nil {
			return "", err
		}
		return message, nil
	case LittleEndianBinary:
		if err := validateBits(message); err != nil {
			return "", err
		}
		if len(message)%8 != 0 {
			return "", ErrNotWholeBytes
		}
		return reverseGroups(message, 8), nil
	case Hex:
		return hexBits(message, false)
	case LittleEndianHex:
		return hexBits(message, true)
	case Decimal:
		return decimalBits(message)
	case File:
		data, err := os.ReadFile(message)
		if err != nil {
			return "", ErrFile
		}
		// File contents are read as UTF-8 text; open, read and
		// encoding failures all collapse to the one condition.
		if !utf8.Valid(data) {
			return "", ErrFile
		}
		return textBits(string(data)), nil
	default:
		return "", &HashError{Kind: fmt.Sprintf("unknown input kind %d", kind)}
	}
}

// textBits expands every byte of the message to 8 bits, MSB first.
func textBits(message string) string {
	var b strings.Builder
	b.Grow(len(message) * 8)
	for i := 0; i < len(message); i++ {
		writeBits(&b, uint64(message[i]), 8)
	}
	return b.String()
}

func validateBits(message string) error {
	for i := 0; i < len(message); i++ {
		if c := message[i]; c != '0' && c != '1' {
			return errDetail(ErrInvalidBinary, "character %q at position %d", c, i)
		}
	}
	return nil
}

// hexBits expands each hex digit to 4 bits. For little-endian input the
// 2-digit byte groups are reversed first, which requires a whole number
// of bytes.
func hexBits(message string, littleEndian bool) (string, error) {
	if littleEndian {
		if len(message)%2 != 0 {
			return "", ErrNotWholeBytes
		}
		message = reverseGroups(message, 2)
	}
	var b strings.Builder
	b.Grow(len(message) * 4)
	for i := 0; i < len(message); i++ {
		v, ok := hexDigit(message[i])
		if !ok {
			return "", errDetail(ErrInvalidHex, "character %q at position %d", message[i], i)
		}
		writeBits(&b, uint64(v), 4)
	}
	return b.String(), nil
}

// decimalBits parses the message as a signed 128-bit integer. A value
// above the positive bound fails with ErrDecimalTooBig so the caller
// can retry with Hex; everything else that doesn't parse, including
// negative overflow, is ErrInvalidDecimal. Non-negative values render
// at minimal width (zero is the single bit "0"); negative values render
// as their 128-bit two's-complement pattern.
func decimalBits(message string) (string, error) {
	n, ok := new(big.Int).SetString(message, 10)
	if !ok {
		return "", ErrInvalidDecimal
	}
	if n.Cmp(decimalMax) > 0 {
		return "", ErrDecimalTooBig
	}
	if n.Cmp(decimalMin) < 0 {
		return "", ErrInvalidDecimal
	}
	if n.Sign() >= 0 {
		return n.Text(2), nil
	}
	// 2^128 + n is in [2^127, 2^128), so its binary text is exactly
	// the 128-bit two's complement of n.
	return new(big.Int).Add(two128, n).Text(2), nil
}

// reverseGroups re-chunks s into width-sized groups and emits the
// groups in reverse order. len(s) must be a multiple of width.
func reverseGroups(s string, width int) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := len(s) - width; i >= 0; i -= width {
		b.WriteString(s[i : i+width])
	}
	return b.String()
}

// writeBits appends the low width bits of v, MSB first.
func writeBits(b *strings.Builder, v uint64, width int) {
	for i := width - 1; i >= 0; i-- {
		if v>>uint(i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
