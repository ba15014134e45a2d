package initializer

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// centroidSpread scales the RandomCentroid perturbation relative to the
// data width: each component moves at most ±centroidSpread/2 × width.
const centroidSpread = 0.1

// Validate checks that data is non-empty and rectangular with at least one
// component, and returns the pattern dimensionality.
// Complexity: O(n).
func Validate(data [][]float64) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	dims := len(data[0])
	if dims == 0 {
		return 0, ErrZeroDimension
	}
	for i, p := range data {
		if len(p) != dims {
			return 0, fmt.Errorf("pattern %d has %d components, want %d: %w", i, len(p), dims, ErrRaggedData)
		}
	}
	return dims, nil
}

// Stats computes per-dimension bounds and the centroid of data.
// Returns the Validate errors for malformed data.
// Complexity: O(n·d) time.
func Stats(data [][]float64) (DataStats, error) {
	dims, err := Validate(data)
	if err != nil {
		return DataStats{}, err
	}
	s := DataStats{
		Min:    make([]float64, dims),
		Max:    make([]float64, dims),
		Mean:   make([]float64, dims),
		Width:  make([]float64, dims),
		MaxAbs: make([]float64, dims),
	}
	col := make([]float64, len(data))
	for d := 0; d < dims; d++ {
		for i, p := range data {
			col[i] = p[d]
		}
		s.Min[d] = floats.Min(col)
		s.Max[d] = floats.Max(col)
		s.Mean[d] = stat.Mean(col, nil)
		s.Width[d] = s.Max[d] - s.Min[d]
		s.MaxAbs[d] = math.Max(math.Abs(s.Min[d]), math.Abs(s.Max[d]))
	}
	return s, nil
}

// Initialize returns one weight vector per neuron of geo, built with the
// given strategy. rng feeds the stochastic strategies; nil means NewRand(0).
//
// Errors:
//   - ErrEmptyData, ErrZeroDimension, ErrRaggedData for malformed data.
//   - ErrUnknownInitType for an unknown strategy.
//
// Complexity: O(n·d + N·d).
func Initialize(data [][]float64, geo Geometry, strategy InitType, rng *rand.Rand) ([][]float64, error) {
	if !strategy.Valid() {
		return nil, fmt.Errorf("Initialize: %v: %w", strategy, ErrUnknownInitType)
	}
	s, err := Stats(data)
	if err != nil {
		return nil, fmt.Errorf("Initialize: %w", err)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	size, dims := geo.Size(), s.Dims()
	weights := make([][]float64, size)
	for i := 0; i < size; i++ {
		w := make([]float64, dims)
		switch strategy {
		case Random:
			for d := range w {
				w[d] = (2*rng.Float64() - 1) * s.MaxAbs[d]
			}
		case RandomCentroid:
			for d := range w {
				w[d] = s.Mean[d] + (rng.Float64()-0.5)*centroidSpread*s.Width[d]
			}
		case RandomSurface:
			for d := range w {
				w[d] = s.Min[d] + rng.Float64()*s.Width[d]
			}
		case UniformGrid:
			gridPosition(w, geo, i, s)
		}
		weights[i] = w
	}
	return weights, nil
}

// gridPosition fills w for neuron i: even dimensions follow the row, odd
// dimensions the column, each normalized to [0,1] and mapped into
// [Min, Max]. A lattice side of length one maps to the dimension's center.
func gridPosition(w []float64, geo Geometry, i int, s DataStats) {
	loc := geo.Location(i)
	for d := range w {
		pos, side := loc.Row, geo.Rows()
		if d%2 == 1 {
			pos, side = loc.Col, geo.Cols()
		}
		if side == 1 {
			w[d] = s.Center(d)
			continue
		}
		w[d] = s.Min[d] + s.Width[d]*float64(pos)/float64(side-1)
	}
}
