package som_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvsom/initializer"
	"github.com/katalvlaran/lvsom/lattice"
	"github.com/katalvlaran/lvsom/som"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allConns = []lattice.Connectivity{lattice.Grid4, lattice.Grid8, lattice.Honeycomb, lattice.FuncNeighbor}

var allInits = []initializer.InitType{
	initializer.Random, initializer.RandomCentroid, initializer.RandomSurface, initializer.UniformGrid,
}

//----------------------------------------------------------------------------//
// Reference scenario
//----------------------------------------------------------------------------//

// TestTrain_CornersScenario trains a 2×2 Grid4 map on the unit square corners:
// every neuron ends on one corner and captures exactly that corner.
func TestTrain_CornersScenario(t *testing.T) {
	m, err := som.New(corners, 2, 2, 100, lattice.Grid4, nil)
	require.NoError(t, err)

	epochs, err := m.Train(false)
	require.NoError(t, err)
	assert.Equal(t, 100, epochs)
	assert.Equal(t, som.EpochLimitReached, m.State())

	w := m.Weights()
	caps := m.CaptureObjects()
	seen := make(map[int]bool)
	for n := 0; n < m.Size(); n++ {
		require.Len(t, caps[n], 1, "neuron %d", n)
		idx := caps[n][0]
		assert.False(t, seen[idx], "pattern %d captured twice", idx)
		seen[idx] = true
		assert.InDeltaSlice(t, corners[idx], w[n], 1e-9, "neuron %d weights", n)
	}
	assert.Len(t, seen, 4)
	assert.Equal(t, []int{1, 1, 1, 1}, m.Awards())
	assert.Equal(t, 4, m.WinnerNumber())
	assert.InDelta(t, 0.0, m.QuantizationError(), 1e-9)
}

//----------------------------------------------------------------------------//
// Epoch accounting and autostop
//----------------------------------------------------------------------------//

// TestTrain_NoAutostopRunsFullBudget checks the returned count equals the budget
// for every connectivity, and that awards sum to the number of patterns.
func TestTrain_NoAutostopRunsFullBudget(t *testing.T) {
	data := randomPoints(40, 3, 1)
	for _, conn := range allConns {
		for _, it := range allInits {
			t.Run(fmt.Sprintf("%v_%v", conn, it), func(t *testing.T) {
				p := params(func(p *som.Parameters) {
					p.InitType = it
					p.InitRadius = 2
				})
				m, err := som.New(data, 4, 5, 15, conn, p, som.WithSeed(3))
				require.NoError(t, err)

				epochs, err := m.Train(false)
				require.NoError(t, err)
				assert.Equal(t, 15, epochs)
				assert.Equal(t, 15, m.Epoch())

				sum := 0
				for _, a := range m.Awards() {
					sum += a
				}
				assert.Equal(t, len(data), sum)

				covered := make([]bool, len(data))
				for n, c := range m.CaptureObjects() {
					assert.Equal(t, m.Awards()[n], len(c))
					for _, idx := range c {
						assert.False(t, covered[idx])
						covered[idx] = true
					}
				}
				assert.NotContains(t, covered, false)
				assert.LessOrEqual(t, m.WinnerNumber(), m.Size())
				assert.Positive(t, m.WinnerNumber())
			})
		}
	}
}

// TestTrain_AutostopBound checks count ≤ budget and the threshold condition
// whenever training stopped early.
func TestTrain_AutostopBound(t *testing.T) {
	data := randomPoints(25, 2, 9)
	for _, conn := range allConns {
		t.Run(conn.String(), func(t *testing.T) {
			p := params(func(p *som.Parameters) { p.AdaptationThreshold = 0.01 })
			m, err := som.New(data, 3, 3, 300, conn, p)
			require.NoError(t, err)

			epochs, err := m.Train(true)
			require.NoError(t, err)
			assert.LessOrEqual(t, epochs, 300)
			assert.Equal(t, epochs, m.Epoch())
			if epochs < 300 {
				assert.Less(t, m.MaximalAdaptation(), p.AdaptationThreshold)
				assert.Equal(t, som.Converged, m.State())
			}
		})
	}
}

// TestTrain_AutostopConvergesImmediately uses the corners scenario where no
// weight moves, so the first epoch already satisfies the threshold.
func TestTrain_AutostopConvergesImmediately(t *testing.T) {
	m, err := som.New(corners, 2, 2, 100, lattice.Grid4, nil)
	require.NoError(t, err)

	epochs, err := m.Train(true)
	require.NoError(t, err)
	assert.Equal(t, 1, epochs)
	assert.Equal(t, som.Converged, m.State())
	assert.Equal(t, 0.0, m.MaximalAdaptation())
	assert.Equal(t, []int{1, 1, 1, 1}, m.Awards())
}

//----------------------------------------------------------------------------//
// Decay schedule
//----------------------------------------------------------------------------//

// TestTrain_DecaySchedule verifies rate and radius are non-negative,
// non-increasing and near zero on the final epoch.
func TestTrain_DecaySchedule(t *testing.T) {
	var reports []som.EpochReport
	p := params(func(p *som.Parameters) {
		p.InitRadius = 3
		p.InitLearnRate = 0.5
	})
	m, err := som.New(randomPoints(20, 2, 4), 4, 4, 50, lattice.Honeycomb, p,
		som.WithOnEpoch(func(r som.EpochReport) { reports = append(reports, r) }))
	require.NoError(t, err)

	_, err = m.Train(false)
	require.NoError(t, err)
	require.Len(t, reports, 50)

	prev := reports[0]
	assert.Equal(t, 1, prev.Epoch)
	assert.Less(t, prev.LearnRate, 0.5)
	assert.Less(t, prev.Radius, 3.0)
	for _, r := range reports[1:] {
		assert.Equal(t, prev.Epoch+1, r.Epoch)
		assert.LessOrEqual(t, r.LearnRate, prev.LearnRate)
		assert.LessOrEqual(t, r.Radius, prev.Radius)
		assert.GreaterOrEqual(t, r.LearnRate, 0.0)
		assert.GreaterOrEqual(t, r.Radius, 0.0)
		assert.GreaterOrEqual(t, r.MaximalAdaptation, 0.0)
		prev = r
	}
	assert.InDelta(t, 0.5/1000, prev.LearnRate, 1e-12)
	assert.InDelta(t, 3.0/1000, prev.Radius, 1e-12)
	assert.Equal(t, prev.LearnRate, m.LearnRate())
	assert.Equal(t, prev.Radius, m.Radius())
	assert.Equal(t, prev.MaximalAdaptation, m.MaximalAdaptation())
}

//----------------------------------------------------------------------------//
// Clustering behavior
//----------------------------------------------------------------------------//

// TestTrain_SeparatesBlobs trains a 1×2 map on two distant blobs and expects
// each neuron to own exactly one blob.
func TestTrain_SeparatesBlobs(t *testing.T) {
	var data [][]float64
	for _, q := range randomPoints(10, 2, 21) {
		data = append(data, []float64{q[0], q[1]})
	}
	for _, q := range randomPoints(10, 2, 22) {
		data = append(data, []float64{10 + q[0], 10 + q[1]})
	}

	m, err := som.New(data, 1, 2, 60, lattice.Grid4, nil)
	require.NoError(t, err)
	_, err = m.Train(false)
	require.NoError(t, err)

	caps := m.CaptureObjects()
	require.Len(t, caps, 2)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, caps[0])
	assert.Equal(t, []int{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, caps[1])
	assert.Equal(t, 2, m.WinnerNumber())

	w := m.Weights()
	assert.Less(t, w[0][0], 5.0)
	assert.Greater(t, w[1][0], 5.0)
}

// TestTrain_FuncNeighborPullsWholeNeighborhood checks that a winner drags
// non-adjacent neurons inside the radius on a FuncNeighbor map but not on Grid4.
func TestTrain_FuncNeighborPullsWholeNeighborhood(t *testing.T) {
	data := [][]float64{{0, 0}, {0, 4}}
	p := params(func(p *som.Parameters) { p.InitRadius = 10 })

	grid, err := som.New(data, 1, 5, 5, lattice.Grid4, p)
	require.NoError(t, err)
	fn, err := som.New(data, 1, 5, 5, lattice.FuncNeighbor, p)
	require.NoError(t, err)
	before := grid.Weights()
	require.Equal(t, before, fn.Weights())

	_, err = grid.Train(false)
	require.NoError(t, err)
	_, err = fn.Train(false)
	require.NoError(t, err)

	// Neuron 2 is two columns from both winners (0 and 4): only FuncNeighbor moves it.
	assert.Equal(t, before[2], grid.Weights()[2])
	assert.NotEqual(t, before[2], fn.Weights()[2])
}

// TestTrain_KernelChoice checks both kernels train and differ in effect.
func TestTrain_KernelChoice(t *testing.T) {
	data := randomPoints(30, 2, 8)
	p := params(func(p *som.Parameters) { p.InitRadius = 3 })

	g, err := som.New(data, 4, 4, 10, lattice.FuncNeighbor, p, som.WithKernel(lattice.Gaussian))
	require.NoError(t, err)
	l, err := som.New(data, 4, 4, 10, lattice.FuncNeighbor, p, som.WithKernel(lattice.Linear))
	require.NoError(t, err)

	_, err = g.Train(false)
	require.NoError(t, err)
	_, err = l.Train(false)
	require.NoError(t, err)
	assert.NotEqual(t, g.Weights(), l.Weights())
}

//----------------------------------------------------------------------------//
// Degeneracy and input drift
//----------------------------------------------------------------------------//

// TestTrain_TiesLowestIndexWins builds a map whose neurons all coincide, so
// every competition is a tie that neuron 0 must win.
func TestTrain_TiesLowestIndexWins(t *testing.T) {
	data := [][]float64{{1, 1}, {1, 1}, {1, 1}}
	type tie struct{ pattern, winner, tied int }
	var ties []tie

	m, err := som.New(data, 1, 2, 2, lattice.Grid4, nil,
		som.WithOnTie(func(p, w, n int) { ties = append(ties, tie{p, w, n}) }))
	require.NoError(t, err)

	epochs, err := m.Train(false)
	require.NoError(t, err)
	assert.Equal(t, 2, epochs)
	assert.Equal(t, 6, m.Ties())
	require.Len(t, ties, 6)
	for i, tc := range ties {
		assert.Equal(t, tie{pattern: i % 3, winner: 0, tied: 1}, tc)
	}
	assert.Equal(t, []int{3, 0}, m.Awards())
	assert.Equal(t, 1, m.WinnerNumber())

	idx, err := m.Simulate([]float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

// TestTrain_RaggedDataAfterConstruction ensures a mutated borrowed data set
// is reported instead of training on it.
func TestTrain_RaggedDataAfterConstruction(t *testing.T) {
	data := [][]float64{{0, 0}, {1, 1}, {2, 2}}
	m, err := som.New(data, 2, 2, 5, lattice.Grid4, nil)
	require.NoError(t, err)
	before := m.Weights()

	data[1] = []float64{1}
	_, err = m.Train(false)
	assert.ErrorIs(t, err, som.ErrInvalidInput)
	assert.ErrorIs(t, err, initializer.ErrRaggedData)
	assert.Equal(t, before, m.Weights())
	assert.Equal(t, som.Idle, m.State())

	data[1] = []float64{1, 1, 1}
	data[0] = []float64{1, 1, 1}
	data[2] = []float64{1, 1, 1}
	_, err = m.Train(false)
	assert.ErrorIs(t, err, som.ErrInvalidInput, "dimension change is rejected too")
}

// TestTrain_RepeatedCallsResetState verifies a second Train restarts the
// schedule while keeping learned weights.
func TestTrain_RepeatedCallsResetState(t *testing.T) {
	data := randomPoints(20, 2, 2)
	m, err := som.New(data, 3, 3, 20, lattice.Grid8, nil)
	require.NoError(t, err)

	_, err = m.Train(false)
	require.NoError(t, err)
	first := m.Weights()

	var firstReport som.EpochReport
	m2, err := som.New(data, 3, 3, 20, lattice.Grid8, nil,
		som.WithOnEpoch(func(r som.EpochReport) {
			if r.Epoch == 1 {
				firstReport = r
			}
		}))
	require.NoError(t, err)
	_, err = m2.Train(false)
	require.NoError(t, err)
	_, err = m2.Train(false)
	require.NoError(t, err)

	assert.Equal(t, 1, firstReport.Epoch)
	assert.InDelta(t, 0.1*math.Exp(-math.Log(1000)/20), firstReport.LearnRate, 1e-12)
	assert.Equal(t, 20, m2.Epoch())
	assert.NotEqual(t, first, m2.Weights(), "second run continues from trained weights")
}
