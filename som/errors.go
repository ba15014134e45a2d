package som

import (
	"errors"
	"fmt"
)

// Error taxonomy of the engine. Errors from the lattice and initializer
// packages are returned joined with one of these, so both
// errors.Is(err, ErrConfiguration) and errors.Is(err, lattice.ErrBadDimensions)
// hold for the same value.
var (
	// ErrConfiguration indicates invalid lattice dimensions, epoch budget,
	// connectivity or training parameters.
	ErrConfiguration = errors.New("som: invalid configuration")

	// ErrInvalidInput indicates an empty or dimensionally inconsistent data
	// set, or a pattern whose length differs from the map's dimensionality.
	ErrInvalidInput = errors.New("som: invalid input")
)

// Operation names used as error prefixes.
const (
	opNew           = "New"
	opTrain         = "Train"
	opSimulate      = "Simulate"
	opSimulateBatch = "SimulateBatch"
)

// somErrorf wraps err with the operation name and a formatted detail.
func somErrorf(op string, err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), err)
}
