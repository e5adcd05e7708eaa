package mysha

import "fmt"

// HashError is the error type for every failure the engine can report.
// The set of conditions is closed; callers match them with errors.Is
// against the package sentinels.
type HashError struct {
	Kind   string
	Detail string
}

func (e *HashError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return e.Kind
}

// Is matches by condition, so detailed errors compare equal to their
// sentinel.
func (e *HashError) Is(target error) bool {
	t, ok := target.(*HashError)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for every failure condition of the engine.
var (
	// ErrDecimalTooBig: a Decimal input exceeds the signed 128-bit
	// range. Recoverable by converting the value to hex and using the
	// Hex input kind instead.
	ErrDecimalTooBig = &HashError{Kind: "decimal too big for a signed 128-bit integer"}
	// ErrInvalidBinary: a Binary or LittleEndianBinary input contains
	// characters other than '0' and '1'.
	ErrInvalidBinary = &HashError{Kind: "invalid value for binary"}
	// ErrInvalidHex: a Hex or LittleEndianHex input contains a
	// non-hexadecimal character.
	ErrInvalidHex = &HashError{Kind: "invalid value for hex"}
	// ErrInvalidDecimal: a Decimal input cannot be parsed as a signed
	// decimal integer.
	ErrInvalidDecimal = &HashError{Kind: "invalid value for decimal"}
	// ErrFile: a File input could not be opened or read. All file
	// failures collapse to this one condition.
	ErrFile = &HashError{Kind: "error while handling file"}
	// ErrNotWholeBytes: a little-endian input does not contain a whole
	// number of bytes, so its byte order cannot be reversed.
	ErrNotWholeBytes = &HashError{Kind: "little endian input must be a whole number of bytes"}
	// ErrInvalidHash: text supplied to ParseDigest is not a valid
	// 64-digit hex digest.
	ErrInvalidHash = &HashError{Kind: "invalid hex for a hash"}
)

func errDetail(base *HashError, format string, args ...any) *HashError {
	return &HashError{Kind: base.Kind, Detail: fmt.Sprintf(format, args...)}
}
