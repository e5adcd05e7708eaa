package mysha

import "math/bits"

// The bitwise primitives of FIPS 180-4 §4.1.2. The lowercase sigmas
// expand the message schedule; the uppercase sigmas, choice and
// majority drive the round function. All addition wraps mod 2^32.

func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}

func smallSigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ x>>3
}

func smallSigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ x>>10
}

func bigSigma0(x uint32) uint32 {
	return rotr(x, 2) ^ rotr(x, 13) ^ rotr(x, 22)
}

func bigSigma1(x uint32) uint32 {
	return rotr(x, 6) ^ rotr(x, 11) ^ rotr(x, 25)
}

func choice(x, y, z uint32) uint32 {
	return (x & y) ^ (^x & z)
}

func majority(x, y, z uint32) uint32 {
	return (x & y) ^ (x & z) ^ (y & z)
}

// expandSchedule fills w[16:] from the seeded first 16 words. Each word
// depends only on w[i-2], w[i-7], w[i-15] and w[i-16], so the fill is
// strictly left to right.
func expandSchedule(w *[64]uint32) {
	for i := 16; i < 64; i++ {
		w[i] = smallSigma0(w[i-15]) + w[i-16] + smallSigma1(w[i-2]) + w[i-7]
	}
}

// compress runs the 64-round compression of one block over the expanded
// schedule and folds the final working variables back into the running
// digest state. A non-nil tracer observes the working variables after
// every round.
func compress(state *[8]uint32, w *[64]uint32, tr Tracer) {
	a, b, c, d := state[0], state[1], state[2], state[3]
	e, f, g, h := state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := bigSigma1(e) + choice(e, f, g) + h + roundConstants[i] + w[i]
		t2 := bigSigma0(a) + majority(a, b, c)

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2

		if tr != nil {
			tr.Round(i, [8]uint32{a, b, c, d, e, f, g, h})
		}
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}
