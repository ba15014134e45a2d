package initializer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsom/lattice"
)

// Sentinel errors for initialization.
var (
	// ErrEmptyData indicates the data set has no patterns.
	ErrEmptyData = errors.New("initializer: data set is empty")
	// ErrRaggedData indicates patterns of differing lengths.
	ErrRaggedData = errors.New("initializer: patterns have differing dimensions")
	// ErrZeroDimension indicates patterns with no components.
	ErrZeroDimension = errors.New("initializer: patterns have zero dimensions")
	// ErrUnknownInitType indicates an InitType outside the known strategies.
	ErrUnknownInitType = errors.New("initializer: unknown initialization strategy")
)

// InitType selects how initial neuron weights are produced.
type InitType int

const (
	// Random draws each component uniformly from the symmetric magnitude
	// range observed in its dimension.
	Random InitType = iota
	// RandomCentroid places every neuron near the data centroid.
	RandomCentroid
	// RandomSurface draws uniformly over the data's bounding box.
	RandomSurface
	// UniformGrid spreads neurons over the bounding box by lattice position.
	UniformGrid
)

var initTypeNames = [...]string{
	Random:         "random",
	RandomCentroid: "random-centroid",
	RandomSurface:  "random-surface",
	UniformGrid:    "uniform-grid",
}

// String returns the canonical strategy name, e.g. "uniform-grid".
func (t InitType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("InitType(%d)", int(t))
	}
	return initTypeNames[t]
}

// Valid reports whether t is one of the known strategies.
func (t InitType) Valid() bool {
	return t >= Random && t <= UniformGrid
}

// ParseInitType maps a canonical name (case-insensitive) to an InitType.
func ParseInitType(name string) (InitType, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t, n := range initTypeNames {
		if n == key {
			return InitType(t), nil
		}
	}
	return 0, fmt.Errorf("ParseInitType(%q): %w", name, ErrUnknownInitType)
}

// Geometry is the part of a lattice the initializer needs.
// *lattice.Lattice satisfies it.
type Geometry interface {
	Rows() int
	Cols() int
	Size() int
	Location(i int) lattice.Location
}

// DataStats summarizes a data set per dimension.
type DataStats struct {
	Min    []float64 // smallest value per dimension
	Max    []float64 // largest value per dimension
	Mean   []float64 // componentwise mean (centroid)
	Width  []float64 // Max - Min
	MaxAbs []float64 // max(|Min|, |Max|)
}

// Dims returns the dimensionality the stats were computed over.
func (s DataStats) Dims() int { return len(s.Min) }

// Center returns the midpoint of the bounding box in dimension d.
func (s DataStats) Center(d int) float64 { return s.Min[d] + s.Width[d]/2 }
