// Package encoding provides the canonical binwire encoders: scalar values,
// homogeneous numeric arrays, length-tagged integers, and the two string
// array layouts (per-string varlen tags and the columnar chunk7 layout).
//
// All encoders produce the same deterministic little-endian byte stream on
// every host. Integers are byte-swapped when the selected engine differs
// from the native order; floating-point values go through a bit-extraction
// strategy selected once at startup so that NaN, Infinity, signed zero and
// subnormals always land in their canonical IEEE 754 patterns.
//
// Encoders accumulate output in pooled buffers and follow a common
// lifecycle (see ColumnarEncoder): Write/WriteSlice append values, Bytes
// exposes the accumulated output, Reset starts a new sequence without
// discarding accumulated bytes, and Finish returns the buffer to the pool.
//
// No encoder retains state between calls other than its output buffer, and
// none of them is safe for concurrent use on the same instance.
package encoding
