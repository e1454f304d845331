package binwire

import (
	"fmt"
	"io"

	"github.com/arloliu/binwire/encoding"
	"github.com/arloliu/binwire/endian"
)

// Writer streams canonical binwire encodings to a caller-supplied sink.
//
// The first sink failure sticks: every later operation becomes a no-op and
// Err returns the original error. The Writer never retries and never rolls
// back partially written bytes; on failure the caller decides what to do
// with the partial output.
//
// A Writer is not safe for concurrent use. Exactly one logical writer must
// be active on a given sink at a time; concurrent producers need one
// Writer per sink or external serialization.
type Writer struct {
	dst    io.Writer
	engine endian.EndianEngine
	err    error
}

// NewWriter creates a Writer producing the canonical little-endian format.
func NewWriter(dst io.Writer) *Writer {
	return NewWriterWithEngine(dst, endian.GetLittleEndianEngine())
}

// NewWriterWithEngine creates a Writer with an explicit endian engine.
// The canonical format is little-endian; a big-endian engine is only
// useful for interoperating with non-standard consumers.
func NewWriterWithEngine(dst io.Writer, engine endian.EndianEngine) *Writer {
	return &Writer{dst: dst, engine: engine}
}

// Err returns the first sink failure, or nil. It is the sole
// failure-reporting channel of the Writer.
func (w *Writer) Err() error {
	return w.err
}

// Engine returns the endian engine the Writer encodes with.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}

	if _, err := w.dst.Write(p); err != nil {
		w.err = fmt.Errorf("binwire: sink write: %w", err)
	}
}

// WriteInt8 writes a single byte.
func (w *Writer) WriteInt8(val int8) {
	w.write([]byte{byte(val)})
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(val uint8) {
	w.write([]byte{val})
}

// WriteInt16 writes 2 bytes in canonical order.
func (w *Writer) WriteInt16(val int16) {
	var buf [2]byte
	w.write(w.engine.AppendUint16(buf[:0], uint16(val)))
}

// WriteUint16 writes 2 bytes in canonical order.
func (w *Writer) WriteUint16(val uint16) {
	var buf [2]byte
	w.write(w.engine.AppendUint16(buf[:0], val))
}

// WriteInt32 writes 4 bytes in canonical order.
func (w *Writer) WriteInt32(val int32) {
	var buf [4]byte
	w.write(w.engine.AppendUint32(buf[:0], uint32(val)))
}

// WriteUint32 writes 4 bytes in canonical order.
func (w *Writer) WriteUint32(val uint32) {
	var buf [4]byte
	w.write(w.engine.AppendUint32(buf[:0], val))
}

// WriteInt64 writes 8 bytes in canonical order.
func (w *Writer) WriteInt64(val int64) {
	var buf [8]byte
	w.write(w.engine.AppendUint64(buf[:0], uint64(val)))
}

// WriteUint64 writes 8 bytes in canonical order.
func (w *Writer) WriteUint64(val uint64) {
	var buf [8]byte
	w.write(w.engine.AppendUint64(buf[:0], val))
}

// WriteFloat32 writes the canonical 4-byte single precision encoding.
func (w *Writer) WriteFloat32(val float32) {
	var buf [4]byte
	w.write(encoding.AppendScalar(w.engine, buf[:0], val))
}

// WriteFloat64 writes the canonical 8-byte double precision encoding.
func (w *Writer) WriteFloat64(val float64) {
	var buf [8]byte
	w.write(encoding.AppendScalar(w.engine, buf[:0], val))
}

// WriteVarlenUint writes a variable-width integer: a one-byte width tag
// from {1, 4, 8} followed by the value in that many bytes.
func (w *Writer) WriteVarlenUint(val uint64) {
	var buf [9]byte
	w.write(encoding.AppendVarlenUint(w.engine, buf[:0], val))
}

// WriteFixlenUint8 writes a fixed-width integer with its one-byte width tag.
func (w *Writer) WriteFixlenUint8(val uint8) {
	var buf [2]byte
	w.write(encoding.AppendFixlenUint8(buf[:0], val))
}

// WriteFixlenUint16 writes a fixed-width integer with its one-byte width tag.
func (w *Writer) WriteFixlenUint16(val uint16) {
	var buf [3]byte
	w.write(encoding.AppendFixlenUint16(w.engine, buf[:0], val))
}

// WriteFixlenUint32 writes a fixed-width integer with its one-byte width tag.
func (w *Writer) WriteFixlenUint32(val uint32) {
	var buf [5]byte
	w.write(encoding.AppendFixlenUint32(w.engine, buf[:0], val))
}

// WriteFixlenUint64 writes a fixed-width integer with its one-byte width tag.
func (w *Writer) WriteFixlenUint64(val uint64) {
	var buf [9]byte
	w.write(encoding.AppendFixlenUint64(w.engine, buf[:0], val))
}

// WriteBytes writes raw bytes to the sink unmodified.
func (w *Writer) WriteBytes(data []byte) {
	w.write(data)
}

// WriteString writes a single string as a varlen length tag followed by
// its raw bytes.
func (w *Writer) WriteString(val string) {
	if w.err != nil {
		return
	}

	enc := encoding.NewVarStringEncoder(w.engine)
	defer enc.Finish()

	enc.Write(val)
	w.write(enc.Bytes())
}

// WriteStrings writes a string array in the standard layout: each element
// as a varlen length tag followed by its raw bytes, with no array-level
// metadata.
func (w *Writer) WriteStrings(values []string) {
	if w.err != nil || len(values) == 0 {
		return
	}

	enc := encoding.NewVarStringEncoder(w.engine)
	defer enc.Finish()

	enc.WriteSlice(values)
	w.write(enc.Bytes())
}

// WriteStringsChunk7 writes a string array in the columnar chunk7 layout:
// uniform-length flag, length-field width, length table, then the
// concatenated raw bytes. An empty array writes nothing.
func (w *Writer) WriteStringsChunk7(values []string) {
	if w.err != nil || len(values) == 0 {
		return
	}

	enc := encoding.NewChunk7StringEncoder(w.engine)
	defer enc.Finish()

	enc.WriteSlice(values)
	enc.Flush()
	w.write(enc.Bytes())
}

// WriteScalar writes a single scalar of any supported wire type. Methods
// cannot be generic, so the per-type WriteXxx methods cover named use and
// this function covers generic call sites.
func WriteScalar[T encoding.Scalar](w *Writer, val T) {
	var buf [8]byte
	w.write(encoding.AppendScalar(w.engine, buf[:0], val))
}

// WriteNumericSlice writes a homogeneous numeric array: the canonical
// fixed-width encodings of all values back to back, with no separators or
// count prefix. Boundary information is the caller's outer framing.
func WriteNumericSlice[T encoding.Scalar](w *Writer, values []T) {
	if w.err != nil || len(values) == 0 {
		return
	}

	enc := encoding.NewNumericEncoder[T](w.engine)
	defer enc.Finish()

	enc.WriteSlice(values)
	w.write(enc.Bytes())
}

// WriteNumericNested writes a slice of numeric slices in order with no
// delimiters between the inner arrays.
func WriteNumericNested[T encoding.Scalar](w *Writer, values [][]T) {
	if w.err != nil || len(values) == 0 {
		return
	}

	enc := encoding.NewNumericEncoder[T](w.engine)
	defer enc.Finish()

	enc.WriteNested(values)
	w.write(enc.Bytes())
}
