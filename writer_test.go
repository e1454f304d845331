package binwire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binwire/encoding"
	"github.com/arloliu/binwire/endian"
)

// failingSink fails every write after the first n calls and records how
// many writes reached it.
type failingSink struct {
	calls   int
	failAt  int
	written bytes.Buffer
}

var errSinkFull = errors.New("sink full")

func (s *failingSink) Write(p []byte) (int, error) {
	s.calls++
	if s.calls > s.failAt {
		return 0, errSinkFull
	}
	s.written.Write(p)

	return len(p), nil
}

func TestWriter_Primitives(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteUint8(0xAB)
	w.WriteInt8(-1)
	w.WriteUint16(0x1234)
	w.WriteInt32(-2)
	w.WriteUint64(0x0102030405060708)
	require.NoError(w.Err())

	require.Equal([]byte{
		0xAB,
		0xFF,
		0x34, 0x12,
		0xFE, 0xFF, 0xFF, 0xFF,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}, buf.Bytes())
}

func TestWriter_Floats(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteFloat32(1.0)
	w.WriteFloat64(1.0)
	require.NoError(w.Err())

	require.Equal([]byte{
		0x00, 0x00, 0x80, 0x3F,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF0, 0x3F,
	}, buf.Bytes())
}

func TestWriter_TaggedIntegers(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteVarlenUint(255)
	w.WriteVarlenUint(256)
	w.WriteFixlenUint16(7)
	require.NoError(w.Err())

	require.Equal([]byte{
		1, 0xFF,
		4, 0x00, 0x01, 0x00, 0x00,
		2, 0x07, 0x00,
	}, buf.Bytes())
}

func TestWriter_Strings(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteStrings([]string{"x", "yz"})
	require.NoError(w.Err())
	require.Equal([]byte{1, 1, 'x', 1, 2, 'y', 'z'}, buf.Bytes())

	buf.Reset()
	w.WriteString("x")
	require.Equal([]byte{1, 1, 'x'}, buf.Bytes())
}

func TestWriter_StringsChunk7(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.WriteStringsChunk7([]string{"ab", "cd", "ef"})
	require.NoError(w.Err())
	require.Equal([]byte{1, 1, 2, 'a', 'b', 'c', 'd', 'e', 'f'}, buf.Bytes())

	// Empty array writes nothing at all.
	buf.Reset()
	w.WriteStringsChunk7(nil)
	require.NoError(w.Err())
	require.Equal(0, buf.Len())
}

func TestWriter_MatchesEncodingPackage(t *testing.T) {
	require := require.New(t)
	engine := endian.GetLittleEndianEngine()
	values := []float64{1.5, math.Inf(1), math.Copysign(0, -1)}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	WriteNumericSlice(w, values)
	require.NoError(w.Err())

	enc := encoding.NewNumericEncoder[float64](engine)
	defer enc.Finish()
	enc.WriteSlice(values)

	require.Equal(enc.Bytes(), buf.Bytes())
}

func TestWriter_GenericScalarAndNested(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriter(&buf)

	WriteScalar(w, uint16(0x1234))
	WriteNumericNested(w, [][]uint8{{1, 2}, {3}})
	require.NoError(w.Err())
	require.Equal([]byte{0x34, 0x12, 1, 2, 3}, buf.Bytes())
}

func TestWriter_StickyError(t *testing.T) {
	require := require.New(t)

	sink := &failingSink{failAt: 1}
	w := NewWriter(sink)

	w.WriteUint8(1) // succeeds
	w.WriteUint8(2) // sink fails here
	require.Error(w.Err())
	require.ErrorIs(w.Err(), errSinkFull)

	// After the first failure nothing more reaches the sink.
	callsAfterFailure := sink.calls
	w.WriteUint64(3)
	w.WriteStrings([]string{"a"})
	w.WriteStringsChunk7([]string{"b"})
	WriteNumericSlice(w, []int32{4})
	require.Equal(callsAfterFailure, sink.calls)
	require.ErrorIs(w.Err(), errSinkFull)

	// Bytes written before the failure stay written; no rollback.
	require.Equal([]byte{1}, sink.written.Bytes())
}

func TestWriter_BigEndianEngine(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	w := NewWriterWithEngine(&buf, endian.GetBigEndianEngine())

	w.WriteUint32(0x12345678)
	require.Equal([]byte{0x12, 0x34, 0x56, 0x78}, buf.Bytes())
	require.Equal(endian.GetBigEndianEngine(), w.Engine())
}
