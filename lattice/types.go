// Package lattice defines core types and connectivity schemes
// for the lattice subpackage of github.com/katalvlaran/lvsom.
package lattice

import (
	"fmt"
	"strings"
)

// Connectivity selects how neurons of the lattice are wired together.
type Connectivity int

const (
	// Grid4 connects each neuron to its up, down, left and right cells.
	Grid4 Connectivity = iota
	// Grid8 adds the four diagonal cells to Grid4.
	Grid8
	// Honeycomb uses hexagonal adjacency: even rows also connect to the
	// up-left and down-left cells, odd rows to the up-right and down-right cells.
	Honeycomb
	// FuncNeighbor keeps no adjacency list; influence between any two neurons
	// is a function of their Euclidean grid distance.
	FuncNeighbor
)

// connectivityNames is indexed by Connectivity.
var connectivityNames = [...]string{
	Grid4:        "grid-four",
	Grid8:        "grid-eight",
	Honeycomb:    "honeycomb",
	FuncNeighbor: "func-neighbor",
}

// String returns the canonical scheme name, e.g. "grid-four".
func (c Connectivity) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
	return connectivityNames[c]
}

// Fixed reports whether the scheme precomputes neighbor lists.
func (c Connectivity) Fixed() bool {
	return c == Grid4 || c == Grid8 || c == Honeycomb
}

// Valid reports whether c is one of the four known schemes.
func (c Connectivity) Valid() bool {
	return c >= Grid4 && c <= FuncNeighbor
}

// ParseConnectivity maps a canonical name (case-insensitive) back to a Connectivity.
// Returns ErrUnknownConnectivity for anything else.
func ParseConnectivity(name string) (Connectivity, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for c, n := range connectivityNames {
		if n == key {
			return Connectivity(c), nil
		}
	}
	return 0, fmt.Errorf("ParseConnectivity(%q): %w", name, ErrUnknownConnectivity)
}

// Location is the fixed (row, col) position of a neuron on the lattice.
type Location struct {
	Row, Col int
}

// Lattice is an immutable rows×cols grid of neurons in row-major order.
// neighbors is nil for FuncNeighbor; sqDist holds size×size squared
// Euclidean grid distances, row-major.
type Lattice struct {
	rows, cols int
	conn       Connectivity
	locations  []Location
	neighbors  [][]int
	sqDist     []float64
}
