package mysha

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

// recorder captures everything the engine pushes through the Tracer.
type recorder struct {
	bits      string
	padded    string
	starts    []int
	total     int
	seeds     [][16]uint32
	schedules [][64]uint32
	rounds    int
	final     [8]uint32
}

func (r *recorder) NormalizedBits(bits string)   { r.bits = bits }
func (r *recorder) PaddedBits(bits string)       { r.padded = bits }
func (r *recorder) Schedule(_ int, w [64]uint32) { r.schedules = append(r.schedules, w) }
func (r *recorder) Round(_ int, _ [8]uint32)     { r.rounds++ }

func (r *recorder) BlockStart(index, total int, words [16]uint32) {
	r.starts = append(r.starts, index)
	r.total = total
	r.seeds = append(r.seeds, words)
}

func (r *recorder) BlockEnd(_ int, state [8]uint32) { r.final = state }

func TestSumTracedObservesPipeline(t *testing.T) {
	var rec recorder
	digest, err := SumTraced("abc", Text, &rec)
	assert.NoError(t, err)
	assert.Equal(t, abcDigest, digest.Hex())

	assert.Equal(t, "011000010110001001100011", rec.bits)
	assert.Equal(t, 512, len(rec.padded))
	assert.Equal(t, []int{0}, rec.starts)
	assert.Equal(t, 1, rec.total)
	assert.Equal(t, uint32(0x61626380), rec.seeds[0][0])
	assert.Equal(t, 64, rec.rounds)

	// The schedule's first 16 words are the block's seed words.
	assert.Equal(t, rec.seeds[0][:], rec.schedules[0][:16])

	// The last folded state is the digest itself.
	assert.Equal(t, digest, newDigest(rec.final))
}

func TestSumTracedMultiBlock(t *testing.T) {
	var rec recorder
	_, err := SumTraced("abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", Text, &rec)
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1}, rec.starts)
	assert.Equal(t, 2, rec.total)
	assert.Equal(t, 128, rec.rounds)
}

// A tracer only observes; the digest must match the untraced run.
func TestSumTracedMatchesSum(t *testing.T) {
	plain, err := Sum("tracing changes nothing", Text)
	assert.NoError(t, err)
	traced, err := SumTraced("tracing changes nothing", Text, &recorder{})
	assert.NoError(t, err)
	assert.Equal(t, plain, traced)
}

func TestSumTracedErrorBeforeTrace(t *testing.T) {
	var rec recorder
	_, err := SumTraced("012", Binary, &rec)
	assert.IsError(t, err, ErrInvalidBinary)
	assert.Equal(t, "", rec.bits)
	assert.Equal(t, 0, rec.rounds)
}
