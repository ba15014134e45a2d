package som

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the unified distance matrix (U-matrix) as a
// Rows()×Cols() dense matrix: each cell holds the mean Euclidean distance
// between that neuron's weights and the weights of its lattice neighbors.
// FuncNeighbor maps use Grid8 adjacency. A neuron without neighbors (1×1
// lattice) gets 0.
// Complexity: O(N·k·d), k ≤ 8.
func (s *SOM) DistanceMatrix() *mat.Dense {
	adj := s.lat.AdjacencyFor(s.lat.Conn())
	cells := make([]float64, s.lat.Size())
	for i, nb := range adj {
		if len(nb) == 0 {
			continue
		}
		var sum float64
		for _, j := range nb {
			sum += floats.Distance(s.weights[i], s.weights[j], 2)
		}
		cells[i] = sum / float64(len(nb))
	}
	return mat.NewDense(s.lat.Rows(), s.lat.Cols(), cells)
}

// WinnerMatrix returns the awards of the last assignment pass laid out as a
// Rows()×Cols() dense matrix.
func (s *SOM) WinnerMatrix() *mat.Dense {
	cells := make([]float64, len(s.awards))
	for i, a := range s.awards {
		cells[i] = float64(a)
	}
	return mat.NewDense(s.lat.Rows(), s.lat.Cols(), cells)
}
