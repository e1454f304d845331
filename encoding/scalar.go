package encoding

import (
	"math"

	"github.com/arloliu/binwire/endian"
)

// Scalar is the closed set of fixed-width types the wire format encodes.
//
// The set is exact (no ~ terms) on purpose: every T must map to exactly one
// canonical encoding, and platform-sized types like int and uint are
// excluded because their width differs between hosts. Callers holding a
// platform-sized or named type convert to the wire type first.
type Scalar interface {
	int8 | int16 | int32 | int64 |
		uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// IEEE 754 field masks for the canonical single/double precision layouts.
const (
	f32SignMask     uint32 = 0x80000000
	f32ExponentMask uint32 = 0x7F800000
	f32MantissaMask uint32 = 0x007FFFFF

	f64SignMask     uint64 = 0x8000000000000000
	f64ExponentMask uint64 = 0x7FF0000000000000
	f64MantissaMask uint64 = 0x000FFFFFFFFFFFFF
)

// FloatClass is the classification of a floating-point value. Every value
// falls into exactly one class, and the encoding preserves the class (plus
// the sign for zero and infinity; NaN payload and sign are not preserved).
type FloatClass uint8

const (
	FloatNormal    FloatClass = iota // FloatNormal is a normalized non-zero finite value.
	FloatSubnormal                   // FloatSubnormal is a denormalized value.
	FloatZero                        // FloatZero is positive or negative zero.
	FloatInfinite                    // FloatInfinite is positive or negative infinity.
	FloatNaN                         // FloatNaN is any not-a-number value.
)

func (c FloatClass) String() string {
	switch c {
	case FloatNormal:
		return "Normal"
	case FloatSubnormal:
		return "Subnormal"
	case FloatZero:
		return "Zero"
	case FloatInfinite:
		return "Infinite"
	case FloatNaN:
		return "NaN"
	default:
		return "Unknown"
	}
}

// ClassifyFloat64 returns the FloatClass of a double precision value.
func ClassifyFloat64(v float64) FloatClass {
	bits := math.Float64bits(v)
	exponent := bits & f64ExponentMask
	mantissa := bits & f64MantissaMask

	switch {
	case exponent == f64ExponentMask && mantissa != 0:
		return FloatNaN
	case exponent == f64ExponentMask:
		return FloatInfinite
	case exponent == 0 && mantissa == 0:
		return FloatZero
	case exponent == 0:
		return FloatSubnormal
	default:
		return FloatNormal
	}
}

// ClassifyFloat32 returns the FloatClass of a single precision value.
func ClassifyFloat32(v float32) FloatClass {
	bits := math.Float32bits(v)
	exponent := bits & f32ExponentMask
	mantissa := bits & f32MantissaMask

	switch {
	case exponent == f32ExponentMask && mantissa != 0:
		return FloatNaN
	case exponent == f32ExponentMask:
		return FloatInfinite
	case exponent == 0 && mantissa == 0:
		return FloatZero
	case exponent == 0:
		return FloatSubnormal
	default:
		return FloatNormal
	}
}

// floatBits converts a floating-point value into its canonical IEEE 754 bit
// pattern. Two interchangeable strategies exist; one is selected once at
// startup and never changes during the process lifetime.
type floatBits interface {
	Bits32(v float32) uint32
	Bits64(v float64) uint64
}

// rawFloatBits is the canonical-native strategy: the host layout already is
// the wire layout, so bit extraction is a direct reinterpretation.
type rawFloatBits struct{}

func (rawFloatBits) Bits32(v float32) uint32 { return math.Float32bits(v) }
func (rawFloatBits) Bits64(v float64) uint64 { return math.Float64bits(v) }

// normalizeFloatBits is the remapping strategy for hosts whose native float
// layout is not the canonical one. Values are classified first: NaN becomes
// the exponent-all-ones / mantissa-all-ones pattern with the sign clear,
// Infinity becomes exponent-all-ones / mantissa-zero with the value's sign,
// and zero, subnormal and normal values go through native bit extraction.
type normalizeFloatBits struct{}

func (normalizeFloatBits) Bits32(v float32) uint32 {
	switch ClassifyFloat32(v) {
	case FloatNaN:
		return f32ExponentMask | f32MantissaMask
	case FloatInfinite:
		bits := f32ExponentMask
		if v < 0 {
			bits |= f32SignMask
		}

		return bits
	default:
		return math.Float32bits(v)
	}
}

func (normalizeFloatBits) Bits64(v float64) uint64 {
	switch ClassifyFloat64(v) {
	case FloatNaN:
		return f64ExponentMask | f64MantissaMask
	case FloatInfinite:
		bits := f64ExponentMask
		if v < 0 {
			bits |= f64SignMask
		}

		return bits
	default:
		return math.Float64bits(v)
	}
}

// floatCodec is the strategy every float encode goes through. It is picked
// once, before any encoder runs, based on the host layout validation.
var floatCodec floatBits = selectFloatCodec()

func selectFloatCodec() floatBits {
	if endian.ValidateFloatLayout() != nil {
		return normalizeFloatBits{}
	}

	return rawFloatBits{}
}

// floatCodecIsRaw reports whether raw bulk copies of float buffers are
// byte-identical to the per-value encode path.
func floatCodecIsRaw() bool {
	_, ok := floatCodec.(rawFloatBits)
	return ok
}

// AppendScalar appends the canonical encoding of a single scalar value to
// buf and returns the extended slice. The output is always exactly the
// type's width: 1, 2, 4 or 8 bytes with no padding.
func AppendScalar[T Scalar](engine endian.EndianEngine, buf []byte, val T) []byte {
	switch v := any(val).(type) {
	case int8:
		return append(buf, byte(v))
	case uint8:
		return append(buf, v)
	case int16:
		return engine.AppendUint16(buf, uint16(v))
	case uint16:
		return engine.AppendUint16(buf, v)
	case int32:
		return engine.AppendUint32(buf, uint32(v))
	case uint32:
		return engine.AppendUint32(buf, v)
	case int64:
		return engine.AppendUint64(buf, uint64(v))
	case uint64:
		return engine.AppendUint64(buf, v)
	case float32:
		return engine.AppendUint32(buf, floatCodec.Bits32(v))
	case float64:
		return engine.AppendUint64(buf, floatCodec.Bits64(v))
	default:
		// Scalar is a closed set of exact types, so this cannot happen.
		panic("encoding: unsupported scalar type")
	}
}
