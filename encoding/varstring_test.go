package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/binwire/endian"
)

func TestVarStringEncoder_Write(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoder := NewVarStringEncoder(engine)
	defer encoder.Finish()

	// Empty string: tag byte + zero-valued length byte, no data.
	encoder.Write("")
	require.Equal(t, 1, encoder.Len())
	require.Equal(t, []byte{1, 0}, encoder.Bytes())

	encoder2 := NewVarStringEncoder(engine)
	defer encoder2.Finish()
	encoder2.Write("hello")
	require.Equal(t, 1, encoder2.Len())
	require.Equal(t, 7, encoder2.Size()) // 2-byte varlen length + 5 bytes data

	bytes := encoder2.Bytes()
	require.Equal(t, byte(1), bytes[0]) // Width tag
	require.Equal(t, byte(5), bytes[1]) // Length
	require.Equal(t, "hello", string(bytes[2:]))
}

func TestVarStringEncoder_WriteSlice(t *testing.T) {
	require := require.New(t)
	encoder := NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	encoder.WriteSlice([]string{"x", "yz"})

	require.Equal(2, encoder.Len())
	require.Equal([]byte{
		1, 1, 0x78, // varlen length 1, "x"
		1, 2, 0x79, 0x7A, // varlen length 2, "yz"
	}, encoder.Bytes())
}

func TestVarStringEncoder_LongString(t *testing.T) {
	require := require.New(t)
	encoder := NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	// A 300-byte string crosses the 1-byte length boundary, so the length
	// gets the 4-byte varlen width.
	long := strings.Repeat("a", 300)
	encoder.Write(long)

	data := encoder.Bytes()
	require.Equal(byte(4), data[0])
	require.Equal(uint32(300), endian.GetLittleEndianEngine().Uint32(data[1:5]))
	require.Equal(long, string(data[5:]))
	require.Equal(5+300, encoder.Size())
}

func TestVarStringEncoder_NoCrossElementOptimization(t *testing.T) {
	require := require.New(t)
	encoder := NewVarStringEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	// Uniform lengths still get one tag per element.
	encoder.WriteSlice([]string{"ab", "cd", "ef"})
	require.Equal([]byte{
		1, 2, 'a', 'b',
		1, 2, 'c', 'd',
		1, 2, 'e', 'f',
	}, encoder.Bytes())
}

func TestVarStringEncoder_Idempotent(t *testing.T) {
	require := require.New(t)
	engine := endian.GetLittleEndianEngine()
	values := []string{"", "a", "hello world"}

	first := NewVarStringEncoder(engine)
	defer first.Finish()
	first.WriteSlice(values)

	second := NewVarStringEncoder(engine)
	defer second.Finish()
	second.WriteSlice(values)

	require.Equal(first.Bytes(), second.Bytes())
}

func TestVarStringEncoder_PanicsAfterFinish(t *testing.T) {
	encoder := NewVarStringEncoder(endian.GetLittleEndianEngine())
	encoder.Finish()

	require.Panics(t, func() { encoder.Write("a") })
	require.Panics(t, func() { encoder.Bytes() })
}
