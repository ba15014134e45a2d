package lattice

import (
	"fmt"
	"math"
	"strings"
)

// Kernel selects the neighborhood influence function used during adaptation.
//
//   - Gaussian: exp(-d²/(2r²)) for d < r, 0 otherwise.
//   - Linear  : 1 - d/r for d < r, 0 otherwise.
//
// Both return 1 at d = 0 and 0 at or beyond r, and never increase with d.
type Kernel int

const (
	// Gaussian is the default bell-shaped kernel truncated at the radius.
	Gaussian Kernel = iota
	// Linear decays in a straight line from 1 at the center to 0 at the radius.
	Linear
)

var kernelNames = [...]string{
	Gaussian: "gaussian",
	Linear:   "linear",
}

// String returns the kernel name.
func (k Kernel) String() string {
	if k < Gaussian || k > Linear {
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
	return kernelNames[k]
}

// Valid reports whether k is one of the known kernels.
func (k Kernel) Valid() bool {
	return k == Gaussian || k == Linear
}

// ParseKernel maps a kernel name (case-insensitive) to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for k, n := range kernelNames {
		if n == key {
			return Kernel(k), nil
		}
	}
	return 0, fmt.Errorf("ParseKernel(%q): %w", name, ErrUnknownKernel)
}

// Influence evaluates the kernel on a squared grid distance and a squared
// radius. The result is in [0,1].
// Complexity: O(1).
func (k Kernel) Influence(sqDist, sqRadius float64) float64 {
	if sqDist <= 0 {
		return 1
	}
	if sqDist >= sqRadius {
		return 0
	}
	switch k {
	case Linear:
		return 1 - math.Sqrt(sqDist/sqRadius)
	default:
		return math.Exp(-sqDist / (2 * sqRadius))
	}
}
