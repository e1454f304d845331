// Package format defines the wire-level constants of the binwire format:
// length-field widths, the chunk7 uniform-length flag bytes, and the
// minimal-width selection rule shared by the string array encodings.
package format

import "github.com/arloliu/binwire/errs"

// Width is the byte width of a length field on the wire.
//
// The wire format supports exactly four widths. The chunk7 string array
// encoding selects from the full set {1, 2, 4, 8}; the generic
// variable-length integer encoding uses only {1, 4, 8}.
type Width uint8

const (
	Width1 Width = 1 // Width1 represents a 1-byte length field.
	Width2 Width = 2 // Width2 represents a 2-byte length field.
	Width4 Width = 4 // Width4 represents a 4-byte length field.
	Width8 Width = 8 // Width8 represents an 8-byte length field.
)

// Chunk7 uniform-length flag bytes. The flag precedes the length table and
// tells the reader whether one common length is broadcast to all elements.
const (
	LengthsVariable byte = 0 // LengthsVariable means one length per element follows.
	LengthsUniform  byte = 1 // LengthsUniform means a single shared length follows.
)

// WidthOf returns the smallest Width able to represent max.
//
// This is the chunk7 length-table selection rule: 1 byte below 256,
// 2 bytes below 65536, 4 bytes below 2^32, 8 bytes otherwise. Note that
// the generic variable-length integer encoding deliberately never selects
// Width2; its rule lives in the encoding package.
func WidthOf(max uint64) Width {
	switch {
	case max < 1<<8:
		return Width1
	case max < 1<<16:
		return Width2
	case max < 1<<32:
		return Width4
	default:
		return Width8
	}
}

// Validate returns errs.ErrInvalidWidth if w is not one of the four
// supported widths.
func (w Width) Validate() error {
	switch w {
	case Width1, Width2, Width4, Width8:
		return nil
	default:
		return errs.ErrInvalidWidth
	}
}

func (w Width) String() string {
	switch w {
	case Width1:
		return "1-byte"
	case Width2:
		return "2-byte"
	case Width4:
		return "4-byte"
	case Width8:
		return "8-byte"
	default:
		return "Unknown"
	}
}
