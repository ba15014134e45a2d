package som

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsom/initializer"
)

// decayLambda makes both schedules fall to 1/1000 of their initial value
// at the final epoch: v(t) = v0 · exp(-λ·t/E), λ = ln(1000).
var decayLambda = math.Log(1000)

// decay evaluates the exponential schedule for epoch t of total.
func decay(v0 float64, t, total int) float64 {
	return v0 * math.Exp(-decayLambda*float64(t)/float64(total))
}

// Train runs up to Epochs() epochs of competitive learning and returns the
// number of epochs executed.
//
// Every epoch:
//  1. Recompute learning rate and radius from the decay schedule.
//  2. Snapshot all weights into a fresh buffer.
//  3. For every pattern in data order: competition, then adaptation.
//  4. Measure MaximalAdaptation against the snapshot; with autostop, stop
//     once it falls below Parameters.AdaptationThreshold.
//
// After the loop the awards and captured objects are rebuilt from a full
// assignment pass. Weights carry over between calls; everything else in
// the training state is reset.
//
// Errors:
//   - ErrInvalidInput if the borrowed data set became empty or ragged.
//
// Complexity: O(E·n·N·d) for fixed schemes; FuncNeighbor adds O(E·n·N·d)
// for the all-to-all neighborhood.
func (s *SOM) Train(autostop bool) (int, error) {
	if dims, err := initializer.Validate(s.data); err != nil || dims != s.dims {
		if err == nil {
			err = initializer.ErrRaggedData
		}
		return 0, fmt.Errorf("%s: %w: %w", opTrain, ErrInvalidInput, err)
	}

	s.resetTraining()
	s.state = Running
	executed, converged := s.epochs, false
	for t := 1; t <= s.epochs; t++ {
		s.epoch = t
		s.learnRate = decay(s.params.InitLearnRate, t, s.epochs)
		s.radius = decay(s.params.InitRadius, t, s.epochs)
		sqRadius := s.radius * s.radius

		prev := s.snapshot()
		for i, p := range s.data {
			winner, tied := s.competition(p)
			if tied > 0 {
				s.ties++
				s.opts.onTie(i, winner, tied)
			}
			s.adaptation(winner, p, sqRadius)
		}
		s.maxAdapt = s.maximalAdaptation(prev)

		s.opts.onEpoch(EpochReport{
			Epoch:             t,
			LearnRate:         s.learnRate,
			Radius:            s.radius,
			MaximalAdaptation: s.maxAdapt,
		})
		if autostop && s.maxAdapt < s.params.AdaptationThreshold {
			executed, converged = t, true
			break
		}
	}
	if converged {
		s.state = Converged
	} else {
		s.state = EpochLimitReached
	}
	s.assign()

	return executed, nil
}

// competition returns the neuron nearest to p by squared Euclidean
// distance, lowest index first on ties, and how many other neurons tied.
func (s *SOM) competition(p []float64) (winner, tied int) {
	best := math.Inf(1)
	for n, w := range s.weights {
		d := sqEuclidean(p, w)
		switch {
		case d < best:
			best, winner, tied = d, n, 0
		case d == best:
			tied++
		}
	}
	return winner, tied
}

// adaptation pulls the winner fully and its neighborhood by kernel
// influence towards p.
func (s *SOM) adaptation(winner int, p []float64, sqRadius float64) {
	rate := s.learnRate
	pull(s.weights[winner], p, rate)
	s.lat.Neighborhood(winner, sqRadius, s.opts.kernel, func(j int, influence float64) {
		pull(s.weights[j], p, rate*influence)
	})
}

// snapshot copies all weights into a freshly allocated flat buffer.
func (s *SOM) snapshot() []float64 {
	buf := make([]float64, 0, len(s.weights)*s.dims)
	for _, w := range s.weights {
		buf = append(buf, w...)
	}
	return buf
}

// maximalAdaptation is max |w - prev| over every neuron and dimension.
func (s *SOM) maximalAdaptation(prev []float64) float64 {
	var m float64
	for n, w := range s.weights {
		base := n * s.dims
		for d, v := range w {
			if diff := math.Abs(v - prev[base+d]); diff > m {
				m = diff
			}
		}
	}
	return m
}

// pull applies w += rate·(p - w) in place.
func pull(w, p []float64, rate float64) {
	for d := range w {
		w[d] += rate * (p[d] - w[d])
	}
}

// sqEuclidean is the squared Euclidean distance between equal-length vectors.
// Summation runs in index order so results are reproducible.
func sqEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}
