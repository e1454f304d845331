package encoding

import (
	"unsafe"

	"github.com/arloliu/binwire/endian"
	"github.com/arloliu/binwire/internal/pool"
)

// NumericEncoder encodes a homogeneous sequence of scalar values as their
// canonical fixed-width encodings, back to back with no separators.
//
// When the selected engine matches the host byte order (and, for float
// types, the host layout is already canonical), WriteSlice appends the
// whole input buffer in a single bulk copy instead of one value at a time.
// The fast path has no observable effect on the output bytes.
type NumericEncoder[T Scalar] struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
	width  int
	bulk   bool
}

var _ ColumnarEncoder[float64] = (*NumericEncoder[float64])(nil)
var _ ColumnarEncoder[int32] = (*NumericEncoder[int32])(nil)

// NewNumericEncoder creates a new numeric array encoder for the scalar type
// T using the specified endian engine.
//
// The encoder uses a pooled byte buffer with amortized growth strategy:
// Write pre-grows the buffer by one element, WriteSlice pre-allocates the
// whole slice's worth of output in one growth operation.
//
// Parameters:
//   - engine: Endian engine for byte order (typically little-endian)
//
// Returns:
//   - *NumericEncoder[T]: A new encoder instance ready for encoding
func NewNumericEncoder[T Scalar](engine endian.EndianEngine) *NumericEncoder[T] {
	var zero T

	isFloat := false
	switch any(zero).(type) {
	case float32, float64:
		isFloat = true
	}

	return &NumericEncoder[T]{
		engine: engine,
		buf:    pool.GetChunkBuffer(),
		width:  int(unsafe.Sizeof(zero)),
		bulk:   endian.CompareNativeEndian(engine) && (!isFloat || floatCodecIsRaw()),
	}
}

// Write encodes a single scalar value with amortized buffer growth.
//
// For encoding multiple values, use WriteSlice for better performance.
//
// Panics if Finish() has been called (nil buffer).
func (e *NumericEncoder[T]) Write(val T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(e.width)
	e.buf.B = AppendScalar(e.engine, e.buf.B, val)
}

// WriteSlice encodes a slice of scalar values with buffer pre-allocation.
//
// The buffer is grown once for the entire slice. On the bulk fast path the
// backing array of values is appended in a single copy; otherwise each
// value is encoded through the canonical scalar path.
//
// Panics if Finish() has been called (nil buffer).
func (e *NumericEncoder[T]) WriteSlice(values []T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	valLen := len(values)
	e.count += valLen

	if valLen == 0 {
		return
	}

	total := valLen * e.width
	e.buf.Grow(total)

	if e.bulk {
		src := unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), total)
		e.buf.MustWrite(src)

		return
	}

	for _, v := range values {
		e.buf.B = AppendScalar(e.engine, e.buf.B, v)
	}
}

// WriteNested encodes a slice of slices in order with no delimiters
// between the inner arrays. Boundary information must be carried by the
// caller's outer framing; the output is indistinguishable from encoding
// the flattened sequence.
func (e *NumericEncoder[T]) WriteNested(values [][]T) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	total := 0
	for _, inner := range values {
		total += len(inner) * e.width
	}
	e.buf.Grow(total)

	for _, inner := range values {
		e.WriteSlice(inner)
	}
}

// Bytes returns the encoded byte slice containing all written values.
//
// The returned slice is valid until the next call to Write, WriteSlice, or
// Reset, and must not be modified by the caller.
//
// Panics if Finish() has been called (nil buffer).
func (e *NumericEncoder[T]) Bytes() []byte {
	if e.buf == nil {
		panic("encoder already finished - cannot access bytes after Finish()")
	}

	return e.buf.Bytes()
}

// Len returns the number of scalar values written since the last Finish.
func (e *NumericEncoder[T]) Len() int {
	return e.count
}

// Size returns the size in bytes of the encoded values.
//
// Panics if Finish() has been called (nil buffer).
func (e *NumericEncoder[T]) Size() int {
	if e.buf == nil {
		panic("encoder already finished - cannot access size after Finish()")
	}

	return e.buf.Len()
}

// Reset clears the encoder state, allowing it to be reused for a new
// sequence of values.
//
// The raw encoding carries no cross-value state, so Reset is a no-op that
// retains the accumulated data in the internal buffer. The caller can
// continue to retrieve the accumulated data using Bytes(), Len(), and Size().
func (e *NumericEncoder[T]) Reset() {
	// No-op to retain the accumulated data in the internal buffer.
}

// Finish finalizes the encoding process and returns buffer resources to
// the pool.
//
// After calling Finish(), the encoder is no longer usable. To encode more
// data, create a new encoder instance.
func (e *NumericEncoder[T]) Finish() {
	if e.buf != nil {
		pool.PutChunkBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}
