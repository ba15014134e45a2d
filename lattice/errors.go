package lattice

import "errors"

var (
	// ErrBadDimensions indicates rows or cols is zero or negative.
	ErrBadDimensions = errors.New("lattice: rows and cols must be positive")
	// ErrUnknownConnectivity indicates a Connectivity value outside the known schemes.
	ErrUnknownConnectivity = errors.New("lattice: unknown connectivity scheme")
	// ErrUnknownKernel indicates a Kernel value outside the known kernels.
	ErrUnknownKernel = errors.New("lattice: unknown neighborhood kernel")
)
