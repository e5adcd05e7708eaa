package mysha

const (
	blockBits = 512
	wordBits  = 32
)

// splitBlocks cuts the padded bit string into consecutive 512-bit
// blocks. The input length is a multiple of 512 by the pad invariant.
func splitBlocks(padded string) []string {
	blocks := make([]string, 0, len(padded)/blockBits)
	for i := 0; i < len(padded); i += blockBits {
		blocks = append(blocks, padded[i:i+blockBits])
	}
	return blocks
}

// blockWords parses a 512-bit block into its sixteen 32-bit words, the
// initial message schedule.
func blockWords(block string) [16]uint32 {
	var words [16]uint32
	for i := range words {
		words[i] = parseWord(block[i*wordBits : (i+1)*wordBits])
	}
	return words
}

// parseWord interprets up to 32 '0'/'1' characters as an unsigned
// big-endian value.
func parseWord(bits string) uint32 {
	var v uint32
	for i := 0; i < len(bits); i++ {
		v <<= 1
		if bits[i] == '1' {
			v |= 1
		}
	}
	return v
}
