// Package mysha implements the SHA-256 hash function from scratch, with
// a selectable input encoding layer.
//
// The message is first normalized into a bit string according to its
// InputKind, padded per FIPS 180-4, split into 512-bit blocks, and
// compressed block by block into a 256-bit digest:
//
//	hash, err := mysha.Sum("abc", mysha.Text)
//	// hash.Hex() == "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
//
// The implementation favors clarity over speed: the whole pipeline
// operates on '0'/'1' character strings, so every padding and
// endianness decision is directly visible. It is not hardened against
// side channels and does not hash incrementally.
package mysha

// Sum hashes the message interpreted according to kind and returns the
// 256-bit digest. Every failure is one of the package's sentinel
// conditions; see HashError.
func Sum(message string, kind InputKind) (Digest, error) {
	return SumTraced(message, kind, nil)
}

// SumTraced is Sum with a Tracer observing the intermediate values. A
// nil tracer is valid and traces nothing.
func SumTraced(message string, kind InputKind, tr Tracer) (Digest, error) {
	bits, err := normalize(message, kind)
	if err != nil {
		return Digest{}, err
	}
	if tr != nil {
		tr.NormalizedBits(bits)
	}

	padded := pad(bits)
	if tr != nil {
		tr.PaddedBits(padded)
	}

	blocks := splitBlocks(padded)
	state := initState

	// Blocks are strictly sequential: each compression starts from
	// the state the previous block produced.
	for bi, block := range blocks {
		var w [64]uint32
		seed := blockWords(block)
		copy(w[:16], seed[:])
		if tr != nil {
			tr.BlockStart(bi, len(blocks), seed)
		}

		expandSchedule(&w)
		if tr != nil {
			tr.Schedule(bi, w)
		}

		compress(&state, &w, tr)
		if tr != nil {
			tr.BlockEnd(bi, state)
		}
	}

	return newDigest(state), nil
}
