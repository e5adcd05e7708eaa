package mysha

// Tracer observes the intermediate values of a hash computation, in
// pipeline order. It exists for visualization: the engine pushes values
// out and never reads anything back, so a tracer cannot change the
// digest. Hooks run synchronously on the hashing goroutine.
type Tracer interface {
	// NormalizedBits receives the message as a canonical bit string,
	// before padding.
	NormalizedBits(bits string)
	// PaddedBits receives the padded bit string, a multiple of 512
	// bits.
	PaddedBits(bits string)
	// BlockStart announces block index (0-based, of total) with its
	// sixteen seed words.
	BlockStart(index, total int, words [16]uint32)
	// Schedule receives the fully expanded 64-word message schedule
	// of the current block.
	Schedule(index int, w [64]uint32)
	// Round receives the eight working variables (a..h) after round i
	// of the current block.
	Round(i int, state [8]uint32)
	// BlockEnd receives the running digest state after the block has
	// been folded in.
	BlockEnd(index int, state [8]uint32)
}
