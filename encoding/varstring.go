package encoding

import (
	"github.com/arloliu/binwire/endian"
	"github.com/arloliu/binwire/internal/pool"
)

// VarStringEncoder encodes strings with a variable-width length prefix.
//
// Each string is encoded independently as:
//   - varlen length tag (see AppendVarlenUint): 2, 5 or 9 bytes
//   - N bytes: raw string data
//
// There is no array-level metadata and no cross-element optimization; for
// arrays whose lengths cluster, the chunk7 layout is more compact.
type VarStringEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ ColumnarEncoder[string] = (*VarStringEncoder)(nil)

// NewVarStringEncoder creates a new variable-length string encoder using
// the specified endian engine.
//
// The encoder uses a pooled byte buffer with amortized growth strategy for
// optimal performance when encoding multiple strings.
func NewVarStringEncoder(engine endian.EndianEngine) *VarStringEncoder {
	return &VarStringEncoder{
		engine: engine,
		buf:    pool.GetChunkBuffer(),
	}
}

// Write encodes a single string: varlen length tag, then raw bytes.
//
// Panics if Finish() has been called (nil buffer).
func (e *VarStringEncoder) Write(text string) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++

	e.buf.Grow(VarlenUintSize(uint64(len(text))) + len(text))
	e.buf.B = AppendVarlenUint(e.engine, e.buf.B, uint64(len(text)))
	e.buf.MustWrite([]byte(text))
}

// WriteSlice encodes a slice of strings with buffer pre-allocation.
//
// The buffer is grown once for the whole slice, then each string is
// encoded in order.
//
// Panics if Finish() has been called (nil buffer).
func (e *VarStringEncoder) WriteSlice(texts []string) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	totalSize := 0
	for _, text := range texts {
		totalSize += VarlenUintSize(uint64(len(text))) + len(text)
	}
	e.buf.Grow(totalSize)

	for _, text := range texts {
		e.buf.B = AppendVarlenUint(e.engine, e.buf.B, uint64(len(text)))
		e.buf.MustWrite([]byte(text))
		e.count++
	}
}

// Bytes returns the encoded data as a byte slice.
//
// The returned slice shares the underlying buffer with the encoder and
// must not be modified.
//
// Panics if Finish() has been called (nil buffer).
func (e *VarStringEncoder) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of strings encoded since the last Finish.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
//
// Panics if Finish() has been called (nil buffer).
func (e *VarStringEncoder) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset clears the encoder state but keeps the accumulated data in the
// internal buffer, allowing it to be reused for a new sequence of strings.
func (e *VarStringEncoder) Reset() {
	e.count = 0
}

// Finish finalizes the encoding process and returns buffer resources to
// the pool. After calling Finish, the encoder is no longer usable.
func (e *VarStringEncoder) Finish() {
	if e.buf != nil {
		pool.PutChunkBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
