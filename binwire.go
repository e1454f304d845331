// Package binwire provides a deterministic, portable binary encoding for
// scalar values, homogeneous numeric arrays, and string arrays.
//
// The wire format is canonical little-endian with IEEE 754 single/double
// precision floats, produced bit-for-bit identically on every host
// regardless of the native byte order or float representation. It is a
// pure write-side layer: framing the output, decoding it, and managing the
// destination's lifecycle belong to the caller.
//
// # Basic Usage
//
// Streaming values to an io.Writer sink:
//
//	import "github.com/arloliu/binwire"
//
//	w := binwire.NewWriter(dst)
//	w.WriteFloat64(3.14)
//	binwire.WriteNumericSlice(w, []int32{1, 2, 3})
//	w.WriteVarlenUint(42)
//	w.WriteStrings([]string{"x", "yz"})            // per-string length tags
//	w.WriteStringsChunk7([]string{"ab", "cd"})     // columnar length table
//	if err := w.Err(); err != nil {
//	    // the sink failed; output may be partial
//	}
//
// For buffer-oriented encoding without a sink, use the encoding package
// directly; its encoders accumulate output in pooled buffers.
//
// # Package Structure
//
//   - encoding: the canonical encoders (scalars, numeric arrays, varlen
//     integers, string arrays)
//   - endian: byte order engines and host representation validation
//   - format: wire-level width and flag constants
package binwire

import "github.com/arloliu/binwire/endian"

// Validate verifies once that the host can produce the canonical wire
// format, failing fast on a non-IEEE 754 float representation. Call it at
// process start when running on unusual targets; on all platforms Go
// currently supports it returns nil.
func Validate() error {
	return endian.ValidateFloatLayout()
}
