// Package errs defines sentinel error values shared across binwire packages.
package errs

import "errors"

var (
	// ErrFloatLayout indicates the host's floating-point representation does
	// not match the canonical IEEE 754 single/double precision layout.
	ErrFloatLayout = errors.New("host floating-point layout is not IEEE 754")

	// ErrInvalidWidth indicates a length-field width outside the supported
	// set of 1, 2, 4 or 8 bytes.
	ErrInvalidWidth = errors.New("invalid width, must be 1, 2, 4 or 8 bytes")
)
