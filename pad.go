package mysha

import "strings"

// pad appends the SHA-256 padding: a '1' bit, '0' bits until the length
// is congruent to 448 mod 512, and the original bit length as a 64-bit
// big-endian field. The result is always a whole number of 512-bit
// blocks; a message too long for its final block spills into a fresh
// one without special-casing.
func pad(bits string) string {
	length := uint64(len(bits))
	var b strings.Builder
	b.Grow(len(bits) + blockBits)
	b.WriteString(bits)
	b.WriteByte('1')
	for (b.Len()+64)%blockBits != 0 {
		b.WriteByte('0')
	}
	writeBits(&b, length, 64)
	return b.String()
}
