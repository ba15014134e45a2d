package som

import (
	"github.com/sourcegraph/conc/pool"
	"gonum.org/v1/gonum/floats"
)

// Simulate returns the index of the neuron nearest to pattern (lowest index
// on ties). It reads the current weights only: awards, captured objects and
// training state are untouched.
//
// Errors:
//   - ErrInvalidInput if len(pattern) differs from Dims().
//
// Complexity: O(N·d).
func (s *SOM) Simulate(pattern []float64) (int, error) {
	if len(pattern) != s.dims {
		return 0, somErrorf(opSimulate, ErrInvalidInput, "pattern has %d components, want %d", len(pattern), s.dims)
	}
	winner, _ := s.competition(pattern)
	return winner, nil
}

// SimulateBatch returns the winner of every pattern, in input order.
// Results are identical to calling Simulate for each pattern; with
// WithWorkers(n>1) the patterns are split across a bounded goroutine pool.
//
// Errors:
//   - ErrInvalidInput if any pattern's length differs from Dims(); nothing
//     is computed in that case.
func (s *SOM) SimulateBatch(patterns [][]float64) ([]int, error) {
	for i, p := range patterns {
		if len(p) != s.dims {
			return nil, somErrorf(opSimulateBatch, ErrInvalidInput, "pattern %d has %d components, want %d", i, len(p), s.dims)
		}
	}
	return s.winners(patterns), nil
}

// winners runs competition for every pattern. Weights are only read, so
// chunks may run concurrently; each slot of out is written by one goroutine.
func (s *SOM) winners(patterns [][]float64) []int {
	out := make([]int, len(patterns))
	workers := s.opts.workers
	if workers <= 1 || len(patterns) < 2*workers {
		for i, p := range patterns {
			out[i], _ = s.competition(p)
		}
		return out
	}

	wp := pool.New().WithMaxGoroutines(workers)
	chunk := (len(patterns) + workers - 1) / workers
	for lo := 0; lo < len(patterns); lo += chunk {
		lo, hi := lo, min(lo+chunk, len(patterns))
		wp.Go(func() {
			for i := lo; i < hi; i++ {
				out[i], _ = s.competition(patterns[i])
			}
		})
	}
	wp.Wait()
	return out
}

// assign rebuilds awards and captured objects in full from the winners of
// every data pattern under the current weights.
func (s *SOM) assign() {
	for i := range s.awards {
		s.awards[i] = 0
		s.captures[i] = s.captures[i][:0]
	}
	for i, w := range s.winners(s.data) {
		s.awards[w]++
		s.captures[w] = append(s.captures[w], i)
	}
}

// WinnerNumber returns how many neurons captured at least one pattern in
// the last assignment pass.
func (s *SOM) WinnerNumber() int {
	n := 0
	for _, a := range s.awards {
		if a > 0 {
			n++
		}
	}
	return n
}

// QuantizationError returns the mean Euclidean distance between every data
// pattern and the weights of its winner under the current weights.
// Complexity: O(n·N·d).
func (s *SOM) QuantizationError() float64 {
	var sum float64
	for i, w := range s.winners(s.data) {
		sum += floats.Distance(s.data[i], s.weights[w], 2)
	}
	return sum / float64(len(s.data))
}
