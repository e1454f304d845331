package encoding

import (
	"github.com/arloliu/binwire/endian"
	"github.com/arloliu/binwire/format"
	"github.com/arloliu/binwire/internal/pool"
)

// Chunk7StringEncoder encodes a string array in the columnar chunk7 layout:
//
//   - 1 byte: uniform-length flag (format.LengthsUniform when every string
//     has the same byte length, format.LengthsVariable otherwise)
//   - 1 byte: length-field width, the smallest of {1, 2, 4, 8} that can
//     represent the maximum string length in the array
//   - length table: a single length (uniform case, broadcast to all
//     elements by the reader) or one length per string, in array order,
//     each in exactly the selected width, little-endian
//   - the raw bytes of every string in order, with no separators
//
// An empty array encodes to zero bytes.
//
// The layout needs the whole array before the first byte can be emitted,
// so the encoder stages strings: Write and WriteSlice accumulate elements,
// and Flush encodes the staged array into the output buffer. Multiple
// arrays can be flushed into one buffer session; the caller's outer
// framing must carry the element counts.
//
// Compared to per-string varlen tags this columnar layout is more compact
// whenever strings share a length distribution, and no worse otherwise
// since the width is chosen from the true maximum.
type Chunk7StringEncoder struct {
	buf     *pool.ByteBuffer
	engine  endian.EndianEngine
	pending []string
	count   int
}

var _ ColumnarEncoder[string] = (*Chunk7StringEncoder)(nil)

// NewChunk7StringEncoder creates a new chunk7 string array encoder using
// the specified endian engine.
func NewChunk7StringEncoder(engine endian.EndianEngine) *Chunk7StringEncoder {
	return &Chunk7StringEncoder{
		engine: engine,
		buf:    pool.GetChunkBuffer(),
	}
}

// Write stages a single string for the current array. Nothing is emitted
// until Flush is called.
//
// Panics if Finish() has been called (nil buffer).
func (e *Chunk7StringEncoder) Write(text string) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.pending = append(e.pending, text)
}

// WriteSlice stages a slice of strings for the current array. Nothing is
// emitted until Flush is called.
//
// Panics if Finish() has been called (nil buffer).
func (e *Chunk7StringEncoder) WriteSlice(texts []string) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.pending = append(e.pending, texts...)
}

// Flush encodes the staged array into the output buffer and clears the
// staging area. Flushing an empty staging area emits nothing, matching the
// zero-byte encoding of an empty array.
//
// A single staged string is trivially uniform and still emits exactly one
// length value.
//
// Panics if Finish() has been called (nil buffer).
func (e *Chunk7StringEncoder) Flush() {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	n := len(e.pending)
	if n == 0 {
		return
	}

	lengths, cleanup := pool.GetUint64Slice(n)
	defer cleanup()

	minLen := uint64(len(e.pending[0]))
	maxLen := minLen
	dataSize := 0
	for i, s := range e.pending {
		l := uint64(len(s))
		lengths[i] = l
		if l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
		dataSize += len(s)
	}

	uniform := minLen == maxLen
	if uniform {
		// One shared length, broadcast to all elements by the reader.
		lengths = lengths[:1]
		lengths[0] = maxLen
	}

	width := format.WidthOf(maxLen)

	e.buf.Grow(2 + len(lengths)*int(width) + dataSize)

	if uniform {
		e.buf.MustWrite([]byte{format.LengthsUniform})
	} else {
		e.buf.MustWrite([]byte{format.LengthsVariable})
	}
	e.buf.MustWrite([]byte{byte(width)})

	for _, l := range lengths {
		e.buf.B = appendLength(e.engine, e.buf.B, width, l)
	}

	for _, s := range e.pending {
		e.buf.MustWrite([]byte(s))
	}

	e.count += n
	e.pending = e.pending[:0]
}

// appendLength appends a length value in exactly the given width.
func appendLength(engine endian.EndianEngine, buf []byte, width format.Width, val uint64) []byte {
	switch width {
	case format.Width1:
		return append(buf, byte(val))
	case format.Width2:
		return engine.AppendUint16(buf, uint16(val))
	case format.Width4:
		return engine.AppendUint32(buf, uint32(val))
	default:
		return engine.AppendUint64(buf, val)
	}
}

// Bytes returns the encoded data as a byte slice. Staged strings that have
// not been flushed are not included.
//
// The returned slice shares the underlying buffer with the encoder and
// must not be modified.
//
// Panics if Finish() has been called (nil buffer).
func (e *Chunk7StringEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of strings encoded (flushed) since the last Finish.
func (e *Chunk7StringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
//
// Panics if Finish() has been called (nil buffer).
func (e *Chunk7StringEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset discards any staged, unflushed strings and clears the encoder
// state, but keeps the accumulated data in the internal buffer so it can
// be reused for a new sequence of arrays.
func (e *Chunk7StringEncoder) Reset() {
	e.pending = e.pending[:0]
	e.count = 0
}

// Finish finalizes the encoding process and returns buffer resources to
// the pool. Staged strings that were never flushed are discarded. After
// calling Finish, the encoder is no longer usable.
func (e *Chunk7StringEncoder) Finish() {
	if e.buf != nil {
		pool.PutChunkBuffer(e.buf)
		e.buf = nil
	}
	e.pending = nil
	e.count = 0
}
