package mysha

import (
	"fmt"
	"math/big"
	"strings"
)

// Digest is an immutable 256-bit hash value backed by its 64-character
// lowercase hex rendering. The zero value is not a valid digest; obtain
// one from Sum or ParseDigest.
type Digest struct {
	hex string
}

func newDigest(state [8]uint32) Digest {
	var b strings.Builder
	b.Grow(64)
	for _, word := range state {
		fmt.Fprintf(&b, "%08x", word)
	}
	return Digest{hex: b.String()}
}

// ParseDigest validates externally supplied hex as a digest. The text
// must be exactly 64 hex digits, either case; anything else fails with
// ErrInvalidHash. With littleEndian set, the byte order of the input is
// reversed, so the stored value is always canonical big-endian.
func ParseDigest(hex string, littleEndian bool) (Digest, error) {
	if len(hex) != 64 {
		return Digest{}, errDetail(ErrInvalidHash, "expected 64 hex digits, got %d", len(hex))
	}
	for i := 0; i < len(hex); i++ {
		if _, ok := hexDigit(hex[i]); !ok {
			return Digest{}, errDetail(ErrInvalidHash, "character %q at position %d", hex[i], i)
		}
	}
	hex = strings.ToLower(hex)
	if littleEndian {
		hex = reverseGroups(hex, 2)
	}
	return Digest{hex: hex}, nil
}

// Hex returns the digest as 64 lowercase hex digits, big-endian.
func (d Digest) Hex() string {
	return d.hex
}

// HexLE returns the digest hex with its byte order reversed. The stored
// value is untouched; reversing twice restores the original.
func (d Digest) HexLE() string {
	return reverseGroups(d.hex, 2)
}

// Int returns the digest value as an arbitrary-precision integer. The
// stored hex is always well formed, so the conversion cannot fail; a
// digest is an unsigned 256-bit quantity and the result is never
// negative.
func (d Digest) Int() *big.Int {
	n, ok := new(big.Int).SetString(d.hex, 16)
	if !ok {
		return new(big.Int)
	}
	return n
}

// Uint is the explicitly unsigned counterpart of Int. Since digests are
// non-negative the two agree numerically; both return fresh values.
func (d Digest) Uint() *big.Int {
	return d.Int()
}

func (d Digest) String() string {
	return d.hex
}

// MarshalText renders the digest as its canonical hex for use in JSON
// or other textual envelopes.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.hex), nil
}

// UnmarshalText parses canonical big-endian digest hex.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text), false)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
