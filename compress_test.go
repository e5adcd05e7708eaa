package mysha

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestRotr(t *testing.T) {
	assert.Equal(t, uint32(0x80000000), rotr(1, 1))
	assert.Equal(t, uint32(0x40000000), rotr(0x80000000, 1))
	assert.Equal(t, uint32(0xdeadbeef), rotr(0xdeadbeef, 32))
}

func TestSmallSigma(t *testing.T) {
	// Single-bit inputs make the rotation-XOR structure visible.
	assert.Equal(t, uint32(0x02000000^0x00004000), smallSigma0(1))
	assert.Equal(t, uint32(0x00008000^0x00002000), smallSigma1(1))
	assert.Equal(t, uint32(0), smallSigma0(0))
	assert.Equal(t, uint32(0), smallSigma1(0))
}

func TestBigSigma(t *testing.T) {
	assert.Equal(t, uint32(0x40000000^0x00080000^0x00000400), bigSigma0(1))
	assert.Equal(t, uint32(0x04000000^0x00200000^0x00000080), bigSigma1(1))
}

func TestChoice(t *testing.T) {
	assert.Equal(t, uint32(0x12345678), choice(0xffffffff, 0x12345678, 0x9abcdef0))
	assert.Equal(t, uint32(0x9abcdef0), choice(0, 0x12345678, 0x9abcdef0))
	// Per-bit: x selects from y where set, from z where clear.
	assert.Equal(t, uint32(0xf00f), choice(0xff00, 0xf0f0, 0x0f0f))
}

func TestMajority(t *testing.T) {
	assert.Equal(t, uint32(0xabcd), majority(0xabcd, 0xabcd, 0x1234))
	assert.Equal(t, uint32(0x1234), majority(0xabcd, 0x1234, 0x1234))
	assert.Equal(t, uint32(0), majority(0, 0, 0xffffffff))
}

// The first derived word of the "abc" schedule equals w0: its other
// inputs (w1, w9, w14) are all zero words.
func TestExpandScheduleAbc(t *testing.T) {
	var w [64]uint32
	seed := blockWords(splitBlocks(pad(textBits("abc")))[0])
	copy(w[:16], seed[:])

	expandSchedule(&w)
	assert.Equal(t, uint32(0x61626380), w[16])
	// w17 pulls in the length word (w15 == 24) through sigma1.
	assert.Equal(t, smallSigma1(24), w[17])
}

// Modular wraparound: sums exceeding 2^32 truncate silently.
func TestExpandScheduleWraps(t *testing.T) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = 0xffffffff
	}
	expandSchedule(&w) // must not panic; uint32 arithmetic wraps
	assert.Equal(t, smallSigma0(0xffffffff)+0xffffffff+smallSigma1(0xffffffff)+0xffffffff, w[16])
}
