package mysha

// InputKind declares how the message string passed to Sum is decoded
// into bits.
type InputKind uint8

const (
	// Text treats the input as UTF-8 text.
	Text InputKind = iota
	// Binary treats the input as a string of '0'/'1' bits.
	Binary
	// LittleEndianBinary treats the input as bits in little-endian
	// byte order.
	LittleEndianBinary
	// Hex treats the input as a hexadecimal value.
	Hex
	// LittleEndianHex treats the input as a hexadecimal value in
	// little-endian byte order.
	LittleEndianHex
	// Decimal treats the input as a signed decimal integer.
	Decimal
	// File treats the input as a path whose contents are hashed as
	// text.
	File
)

// String returns the name of the input kind.
func (k InputKind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case LittleEndianBinary:
		return "lebinary"
	case Hex:
		return "hex"
	case LittleEndianHex:
		return "lehex"
	case Decimal:
		return "decimal"
	case File:
		return "file"
	default:
		return "unknown"
	}
}
