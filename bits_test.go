package mysha

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTextBits(t *testing.T) {
	assert.Equal(t, "01100001", textBits("a"))
	assert.Equal(t, "011000010110001001100011", textBits("abc"))
	assert.Equal(t, "", textBits(""))
}

func TestHexBits(t *testing.T) {
	bits, err := hexBits("0f", false)
	assert.NoError(t, err)
	assert.Equal(t, "00001111", bits)

	bits, err = hexBits("A", false)
	assert.NoError(t, err)
	assert.Equal(t, "1010", bits)
}

func TestHexBitsLittleEndian(t *testing.T) {
	// 0x0102 little-endian is the bytes 02 01.
	bits, err := hexBits("0201", true)
	assert.NoError(t, err)
	assert.Equal(t, "0000000100000010", bits)
}

func TestReverseGroups(t *testing.T) {
	assert.Equal(t, "cdab", reverseGroups("abcd", 2))
	assert.Equal(t, "abcd", reverseGroups(reverseGroups("abcd", 2), 2))
	assert.Equal(t, "", reverseGroups("", 2))
	assert.Equal(t, "1100001101100010", reverseGroups("0110001011000011", 8))
}

func TestDecimalBitsMinimalWidth(t *testing.T) {
	bits, err := decimalBits("5")
	assert.NoError(t, err)
	assert.Equal(t, "101", bits)

	bits, err = decimalBits("0")
	assert.NoError(t, err)
	assert.Equal(t, "0", bits)

	bits, err = decimalBits("+7")
	assert.NoError(t, err)
	assert.Equal(t, "111", bits)
}

func TestDecimalBitsNegativeTwosComplement(t *testing.T) {
	bits, err := decimalBits("-1")
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("1", 128), bits)

	bits, err = decimalBits("-2")
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat("1", 127)+"0", bits)

	// The most negative value: a single sign bit.
	bits, err = decimalBits("-170141183460469231731687303715884105728")
	assert.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", 127), bits)
}

func TestValidateBits(t *testing.T) {
	assert.NoError(t, validateBits("0101"))
	assert.NoError(t, validateBits(""))
	assert.IsError(t, validateBits("0121"), ErrInvalidBinary)
}

func TestNormalizeBinaryPassthrough(t *testing.T) {
	bits, err := normalize("0110", Binary)
	assert.NoError(t, err)
	assert.Equal(t, "0110", bits)
}

// Empty non-text inputs are valid and normalize to the empty bit
// string, hashing like the empty message.
func TestNormalizeEmptyInputs(t *testing.T) {
	for _, kind := range []InputKind{Binary, Hex, LittleEndianBinary, LittleEndianHex} {
		bits, err := normalize("", kind)
		assert.NoError(t, err, "kind %s", kind)
		assert.Equal(t, "", bits)
	}
}
