// Package som - functional options for engine policy.
//
// Contract:
//   - Options are functional (type Option func(*options)).
//   - Option constructors validate and PANIC on meaningless inputs;
//     the engine itself never panics on user input.
//   - Determinism is explicit: seeding is done via WithSeed, WithRand or
//     Parameters.RandomState, in that order of precedence (last WithX wins).
package som

import (
	"math/rand"

	"github.com/katalvlaran/lvsom/initializer"
	"github.com/katalvlaran/lvsom/lattice"
)

// Option customizes engine policy before construction completes.
type Option func(*options)

// EpochReport describes one finished training epoch.
type EpochReport struct {
	Epoch             int     // 1-based epoch index
	LearnRate         float64 // learning rate used during the epoch
	Radius            float64 // neighborhood radius used during the epoch
	MaximalAdaptation float64 // largest |w - w_prev| observed over the epoch
}

// options stores the resolved policy. Hooks are never nil after defaults.
type options struct {
	rng     *rand.Rand
	kernel  lattice.Kernel
	workers int
	onTie   func(pattern, winner, tied int)
	onEpoch func(EpochReport)
}

func defaultOptions() options {
	return options{
		kernel:  lattice.Gaussian,
		workers: 1,
		onTie:   func(int, int, int) {},
		onEpoch: func(EpochReport) {},
	}
}

// WithSeed seeds stochastic weight initialization, overriding
// Parameters.RandomState. Seed 0 follows initializer.NewRand's policy.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = initializer.NewRand(seed) }
}

// WithRand provides an explicit RNG for stochastic initialization.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("som: WithRand(nil)")
	}
	return func(o *options) { o.rng = r }
}

// WithKernel selects the neighborhood influence function (default Gaussian).
// Panics on an unknown kernel.
func WithKernel(k lattice.Kernel) Option {
	if !k.Valid() {
		panic("som: WithKernel(unknown kernel)")
	}
	return func(o *options) { o.kernel = k }
}

// WithWorkers bounds the goroutines used for read-only winner assignment
// (SimulateBatch and the post-training pass). Training itself stays
// sequential. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("som: WithWorkers(n<1)")
	}
	return func(o *options) { o.workers = n }
}

// WithOnTie registers a callback for numerical degeneracy during training:
// pattern had `tied` other neurons at exactly the winner's distance, and the
// lowest index won. Panics on nil.
func WithOnTie(fn func(pattern, winner, tied int)) Option {
	if fn == nil {
		panic("som: WithOnTie(nil)")
	}
	return func(o *options) { o.onTie = fn }
}

// WithOnEpoch registers a callback invoked after every training epoch.
// Panics on nil.
func WithOnEpoch(fn func(EpochReport)) Option {
	if fn == nil {
		panic("som: WithOnEpoch(nil)")
	}
	return func(o *options) { o.onEpoch = fn }
}
