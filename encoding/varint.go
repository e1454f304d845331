package encoding

import (
	"math"

	"github.com/arloliu/binwire/endian"
)

// AppendVarlenUint appends a variable-width integer to buf and returns the
// extended slice.
//
// The encoding is a one-byte width tag followed by the value in exactly
// that many bytes: tag 1 for values below 256, tag 4 up to the uint32
// maximum, tag 8 otherwise. The payload width is recoverable from the tag
// alone.
//
// The selector deliberately never produces a 2-byte width even though the
// chunk7 length-table encoding uses one; decoders dispatch varlen tags on
// exactly {1, 4, 8}, so emitting 2 here would be a compatibility break.
func AppendVarlenUint(engine endian.EndianEngine, buf []byte, val uint64) []byte {
	switch {
	case val < 1<<8:
		return append(buf, 1, byte(val))
	case val <= math.MaxUint32:
		buf = append(buf, 4)
		return engine.AppendUint32(buf, uint32(val))
	default:
		buf = append(buf, 8)
		return engine.AppendUint64(buf, val)
	}
}

// VarlenUintSize returns the encoded size in bytes of a variable-width
// integer, including its tag byte. Useful for pre-growing buffers.
func VarlenUintSize(val uint64) int {
	switch {
	case val < 1<<8:
		return 2
	case val <= math.MaxUint32:
		return 5
	default:
		return 9
	}
}

// AppendFixlenUint8 appends a fixed-width integer: a one-byte width tag
// equal to the type's size, then the value itself.
func AppendFixlenUint8(buf []byte, val uint8) []byte {
	return append(buf, 1, val)
}

// AppendFixlenUint16 appends a 2-byte fixed-width integer with its width tag.
func AppendFixlenUint16(engine endian.EndianEngine, buf []byte, val uint16) []byte {
	buf = append(buf, 2)
	return engine.AppendUint16(buf, val)
}

// AppendFixlenUint32 appends a 4-byte fixed-width integer with its width tag.
func AppendFixlenUint32(engine endian.EndianEngine, buf []byte, val uint32) []byte {
	buf = append(buf, 4)
	return engine.AppendUint32(buf, val)
}

// AppendFixlenUint64 appends an 8-byte fixed-width integer with its width tag.
func AppendFixlenUint64(engine endian.EndianEngine, buf []byte, val uint64) []byte {
	buf = append(buf, 8)
	return engine.AppendUint64(buf, val)
}
