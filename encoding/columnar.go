package encoding

type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice, or Reset.
	// The caller should not modify the returned slice.
	//
	// The Reset() method does not clear the internal buffer, allowing it to be reused for a new sequence of values
	// until the end of the encoding process.
	Bytes() []byte

	// Len returns the number of encoded values.
	//
	// The Reset() method does not clear the internal buffer, allowing it to be reused for a new sequence of values
	// until the end of the encoding process.
	Len() int

	// Size returns the size in bytes of encoded values.
	// It represents the number of bytes that were written to the internal buffer.
	//
	// The Reset() method does not clear the internal buffer, allowing it to be reused for a new sequence of values
	// until the end of the encoding process.
	Size() int

	// Reset clears the internal encoder state but keeps the accumulated data in the internal buffer,
	// allowing it to be reused for a new sequence of values until the end of the encoding process.
	//
	// The Len(), Size() and Bytes() remain unchanged, the caller will retrieve the accumulated data
	// information using Len(), Size() and Bytes().
	Reset()

	// Finish finalizes the encoding process and returns buffer resources to the pool.
	//
	// After calling Finish(), the encoder is no longer usable. Any subsequent calls to
	// Write(), WriteSlice(), Bytes(), Len(), or Size() will result in a panic due to nil buffer.
	//
	// To encode more data, create a new encoder instance.
	//
	// This method must be called when the encoding session is complete to ensure buffer
	// resources are properly returned to the pool for reuse by other encoders. Use defer
	// to ensure it's called even in error paths:
	//
	//	encoder := NewNumericEncoder[float64](engine)
	//	defer encoder.Finish()  // Ensure buffer is returned to pool
	//
	//	encoder.Write(value1)
	//	data := encoder.Bytes()  // Get data before Finish
	//	// Finish() called automatically via defer
	Finish()

	// Write a single value.
	//
	// This method is optimized for appending a single value.
	// For bulk writes, use WriteSlice for better performance.
	Write(data T)

	// WriteSlice encodes a slice of values.
	//
	// This method is optimized for bulk writes. For single writes, use Write for better performance.
	WriteSlice(values []T)
}
