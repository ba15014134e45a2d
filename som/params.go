package som

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsom/initializer"
)

// Defaults for Parameters.
const (
	DefaultInitType            = initializer.UniformGrid
	DefaultInitRadius          = 1.0
	DefaultInitLearnRate       = 0.1
	DefaultAdaptationThreshold = 0.001
)

// Parameters holds the algorithm knobs of a map.
//
// Fields:
//   - InitType           : weight initialization strategy.
//   - InitRadius         : neighborhood radius at epoch 0, in grid units.
//   - InitLearnRate      : learning rate at epoch 0.
//   - AdaptationThreshold: autostop bound on the largest per-epoch weight change.
//   - RandomState        : seed for stochastic initialization (0 ⇒ initializer.DefaultSeed).
type Parameters struct {
	InitType            initializer.InitType
	InitRadius          float64
	InitLearnRate       float64
	AdaptationThreshold float64
	RandomState         int64
}

// DefaultParameters returns Parameters with uniform-grid initialization,
// radius 1.0, learning rate 0.1 and adaptation threshold 0.001.
func DefaultParameters() Parameters {
	return Parameters{
		InitType:            DefaultInitType,
		InitRadius:          DefaultInitRadius,
		InitLearnRate:       DefaultInitLearnRate,
		AdaptationThreshold: DefaultAdaptationThreshold,
	}
}

// validate reports the first invalid field as an ErrConfiguration.
func (p Parameters) validate() error {
	if !p.InitType.Valid() {
		return fmt.Errorf("%w: %w", ErrConfiguration, initializer.ErrUnknownInitType)
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"InitRadius", p.InitRadius},
		{"InitLearnRate", p.InitLearnRate},
		{"AdaptationThreshold", p.AdaptationThreshold},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) || c.v < 0 {
			return fmt.Errorf("%s=%v must be finite and non-negative: %w", c.name, c.v, ErrConfiguration)
		}
	}
	return nil
}
