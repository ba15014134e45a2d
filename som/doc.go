// Package som trains and queries self-organizing feature maps (Kohonen maps).
//
// 🚀 What is a SOM?
//
//	A SOM projects high-dimensional patterns onto a small 2D lattice of
//	prototype vectors ("neurons") while keeping neighbors on the lattice
//	close in input space. It is used for:
//	  • Exploratory clustering and visual inspection of feature spaces
//	  • Vector quantization and codebook learning
//	  • Dimensionality reduction that preserves topology
//
// ✨ Key features:
//   - four lattice connectivities: Grid4, Grid8, Honeycomb, FuncNeighbor
//   - four initializations: random, random-centroid, random-surface, uniform-grid
//   - Gaussian or linear neighborhood kernel (WithKernel)
//   - exponential learning-rate/radius decay down to 0.1% on the last epoch
//   - autostop on the largest per-epoch weight change
//   - awards, captured objects, U-matrix and winner matrix after training
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/lvsom/lattice"
//	  "github.com/katalvlaran/lvsom/som"
//	)
//
//	params := som.DefaultParameters()
//	params.InitRadius = 2
//
//	m, err := som.New(data, 10, 10, 200, lattice.Honeycomb, &params, som.WithSeed(7))
//	if err != nil {
//	  // errors.Is(err, som.ErrConfiguration) / som.ErrInvalidInput
//	}
//	epochs, _ := m.Train(true)
//	idx, _ := m.Simulate(data[0])
//	fmt.Println(epochs, idx, m.CaptureObjects()[idx])
//
// Performance:
//
//   - Train:    O(E·n·N·d)
//   - Simulate: O(N·d)
//   - Memory:   O(N² + N·d), the lattice caches all-pairs grid distances.
//
// Errors:
//   - ErrConfiguration: zero rows/cols/epochs, unknown connectivity or
//     init type, negative or non-finite parameters.
//   - ErrInvalidInput : empty or ragged data, pattern of the wrong length.
//
// Equal-distance competitions are not errors: the lowest neuron index wins
// and the event is reported through WithOnTie and Ties().
package som
