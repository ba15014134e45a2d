package som

import (
	"fmt"

	"github.com/katalvlaran/lvsom/initializer"
	"github.com/katalvlaran/lvsom/lattice"
)

// State is the position of the engine in its training state machine:
// Idle → Running → Converged | EpochLimitReached.
type State int

const (
	// Idle means Train has not been called yet.
	Idle State = iota
	// Running means Train is in progress.
	Running
	// Converged means the last Train stopped early on the adaptation threshold.
	Converged
	// EpochLimitReached means the last Train used its whole epoch budget.
	EpochLimitReached
)

var stateNames = [...]string{"idle", "running", "converged", "epoch-limit-reached"}

// String returns the state name.
func (s State) String() string {
	if s < Idle || s > EpochLimitReached {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// SOM is a self-organizing feature map bound to one input data set.
// The data set is borrowed: callers must not mutate it while the map is in use.
type SOM struct {
	lat    *lattice.Lattice
	data   [][]float64
	dims   int
	epochs int
	params Parameters
	opts   options

	weights  [][]float64 // one vector per neuron, len == dims
	awards   []int       // wins per neuron in the last assignment pass
	captures [][]int     // data indices per neuron in the last assignment pass

	// training state, reset at the start of Train
	state     State
	epoch     int
	learnRate float64
	radius    float64
	maxAdapt  float64
	ties      int
}

// New builds a map of rows×cols neurons over data.
//
// params may be nil, meaning DefaultParameters(). Validation happens before
// any lattice or weight allocation, in this order: lattice shape, epoch
// budget, connectivity, parameters, data.
//
// Errors:
//   - ErrConfiguration (joined with lattice.ErrBadDimensions,
//     lattice.ErrUnknownConnectivity or initializer.ErrUnknownInitType
//     where applicable).
//   - ErrInvalidInput (joined with initializer.ErrEmptyData,
//     initializer.ErrRaggedData or initializer.ErrZeroDimension).
//
// Complexity: O(N² + n·d + N·d) for N neurons, n patterns, d dimensions.
func New(data [][]float64, rows, cols, epochs int, conn lattice.Connectivity, params *Parameters, opts ...Option) (*SOM, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d: %w: %w", opNew, rows, cols, ErrConfiguration, lattice.ErrBadDimensions)
	}
	if epochs <= 0 {
		return nil, somErrorf(opNew, ErrConfiguration, "epochs=%d must be positive", epochs)
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("%s: %v: %w: %w", opNew, conn, ErrConfiguration, lattice.ErrUnknownConnectivity)
	}
	p := DefaultParameters()
	if params != nil {
		p = *params
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	dims, err := initializer.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidInput, err)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = initializer.NewRand(p.RandomState)
	}

	lat, err := lattice.New(rows, cols, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrConfiguration, err)
	}
	weights, err := initializer.Initialize(data, lat, p.InitType, o.rng)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNew, ErrInvalidInput, err)
	}

	s := &SOM{
		lat:      lat,
		data:     data,
		dims:     dims,
		epochs:   epochs,
		params:   p,
		opts:     o,
		weights:  weights,
		awards:   make([]int, lat.Size()),
		captures: make([][]int, lat.Size()),
	}
	s.resetTraining()

	return s, nil
}

// resetTraining restores the training state to its epoch-0 values.
func (s *SOM) resetTraining() {
	s.state = Idle
	s.epoch = 0
	s.learnRate = s.params.InitLearnRate
	s.radius = s.params.InitRadius
	s.maxAdapt = 0
	s.ties = 0
}

// Size returns the number of neurons.
func (s *SOM) Size() int { return s.lat.Size() }

// Rows returns the number of lattice rows.
func (s *SOM) Rows() int { return s.lat.Rows() }

// Cols returns the number of lattice columns.
func (s *SOM) Cols() int { return s.lat.Cols() }

// Dims returns the pattern dimensionality.
func (s *SOM) Dims() int { return s.dims }

// Epochs returns the configured epoch budget.
func (s *SOM) Epochs() int { return s.epochs }

// Parameters returns the resolved training parameters.
func (s *SOM) Parameters() Parameters { return s.params }

// Lattice returns the immutable topology the map is laid out on.
func (s *SOM) Lattice() *lattice.Lattice { return s.lat }

// State returns the training state machine position.
func (s *SOM) State() State { return s.state }

// Epoch returns the index of the last epoch executed (0 before training).
func (s *SOM) Epoch() int { return s.epoch }

// LearnRate returns the current learning rate.
func (s *SOM) LearnRate() float64 { return s.learnRate }

// Radius returns the current neighborhood radius.
func (s *SOM) Radius() float64 { return s.radius }

// MaximalAdaptation returns the largest |w - w_prev| over all neurons and
// dimensions measured on the last executed epoch (0 before training).
func (s *SOM) MaximalAdaptation() float64 { return s.maxAdapt }

// Ties returns how many competitions of the last Train had several neurons
// at exactly the minimum distance.
func (s *SOM) Ties() int { return s.ties }

// Weights returns a deep copy of every neuron's weight vector.
func (s *SOM) Weights() [][]float64 {
	out := make([][]float64, len(s.weights))
	for i, w := range s.weights {
		out[i] = append([]float64(nil), w...)
	}
	return out
}

// Awards returns a copy of the per-neuron win counts.
func (s *SOM) Awards() []int {
	return append([]int(nil), s.awards...)
}

// CaptureObjects returns a deep copy of the per-neuron captured data indices.
// Every list is non-nil and in ascending data order.
func (s *SOM) CaptureObjects() [][]int {
	out := make([][]int, len(s.captures))
	for i, c := range s.captures {
		out[i] = append([]int{}, c...)
	}
	return out
}

// Neighbors returns every neuron's neighbor index list. Lists are empty for
// FuncNeighbor maps.
func (s *SOM) Neighbors() [][]int {
	out := make([][]int, s.lat.Size())
	for i := range out {
		out[i] = s.lat.Neighbors(i)
	}
	return out
}
