// Package endian provides byte order utilities for binwire's binary encoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface. The canonical binwire wire format is little-endian, so most
// callers want GetLittleEndianEngine():
//
//	import "github.com/arloliu/binwire/endian"
//
//	engine := endian.GetLittleEndianEngine()
//	encoder := encoding.NewNumericEncoder[float64](engine)
//
// The package also hosts the host-representation checks the encoders rely
// on: CheckEndianness probes the native byte order (used to enable bulk
// memory copies when the native order already matches the wire order), and
// ValidateFloatLayout verifies once that the host's floating-point bit
// layout is the canonical IEEE 754 single/double precision layout.
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/arloliu/binwire/errs"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 is 256. For a little-endian system, the LSB (0x00) is first.
	// For a big-endian system, the MSB (0x01) is first.
	var i uint16 = 0x0100

	// Create a byte slice pointing to the memory address of 'i'.
	// We only need the first byte.
	b := (*[2]byte)(unsafe.Pointer(&i))

	// Check the first byte at the lowest memory address
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ValidateFloatLayout verifies that the host's floating-point representation
// matches the canonical IEEE 754 single/double precision layout the wire
// format assumes.
//
// The check probes a handful of values whose canonical bit patterns are
// fixed by the format: 1.0, negative zero, positive infinity and the
// smallest subnormal. A mismatch on any of them means raw bit extraction
// would produce corrupt output, so callers must refuse to encode.
//
// Returns errs.ErrFloatLayout on a non-conforming host, nil otherwise.
// The result never changes during a process lifetime, so calling it once
// at startup is sufficient.
func ValidateFloatLayout() error {
	if math.Float32bits(1.0) != 0x3F800000 || math.Float64bits(1.0) != 0x3FF0000000000000 {
		return errs.ErrFloatLayout
	}

	// Sign bit placement, checked via negative zero.
	if math.Float32bits(float32(math.Copysign(0, -1))) != 0x80000000 ||
		math.Float64bits(math.Copysign(0, -1)) != 0x8000000000000000 {
		return errs.ErrFloatLayout
	}

	// Exponent-all-ones, mantissa-zero must be infinity.
	if math.Float64bits(math.Inf(1)) != 0x7FF0000000000000 {
		return errs.ErrFloatLayout
	}

	// Subnormal support: the smallest positive subnormal must survive a
	// round-trip and still compare greater than zero.
	if math.Float64frombits(1) <= 0 || math.Float64bits(math.SmallestNonzeroFloat64) != 1 {
		return errs.ErrFloatLayout
	}

	return nil
}
