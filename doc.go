// Package lvsom is a self-organizing feature map (Kohonen map) engine:
// unsupervised clustering and topology-preserving projection of numeric
// patterns onto a small two-dimensional lattice of neurons.
//
// 🚀 What is in lvsom?
//
//	• lattice/    : rows×cols neuron topologies (grid-four, grid-eight,
//	                 honeycomb, func-neighbor), squared grid distances and
//	                 Gaussian/linear neighborhood kernels
//	• initializer/: weight initialization strategies (random,
//	                 random-centroid, random-surface, uniform-grid) and the
//	                 deterministic RNG policy
//	• som/        : the engine: construction, training with exponential
//	                 decay and autostop, classification, awards, captured
//	                 objects, U-matrix and winner matrix
//
// ✨ Why choose lvsom?
//
//   - Deterministic: seeded initialization, fixed data order, lowest index wins ties
//   - Observable: OnTie / OnEpoch hooks instead of hidden logging
//   - Typed errors: ErrConfiguration and ErrInvalidInput, joined with
//     sub-package sentinels for errors.Is
//
// Quick start:
//
//	m, err := som.New(data, 8, 8, 100, lattice.Grid8, nil, som.WithSeed(42))
//	if err != nil {
//	  log.Fatal(err)
//	}
//	m.Train(true)
//	idx, _ := m.Simulate(pattern)
package lvsom
