// Package initializer produces the starting weight vector of every neuron
// of a self-organizing map from the data set it is going to learn.
//
// Strategies:
//
//   - Random        : components drawn uniformly from [-m, m], m = largest |value| per dimension.
//   - RandomCentroid: the componentwise mean plus a small uniform perturbation.
//   - RandomSurface : uniform over the data's bounding box.
//   - UniformGrid   : deterministic; lattice position mapped into the bounding box.
//
// Usage:
//
//	stats, _ := initializer.Stats(data)
//	w, err := initializer.Initialize(data, lat, initializer.UniformGrid, initializer.NewRand(0))
//
// Determinism:
//
//	Stochastic strategies draw from the supplied *rand.Rand in neuron-major,
//	dimension-minor order. NewRand(0) falls back to a fixed default seed, so
//	identical inputs always yield identical weights.
//
// Complexity:
//
//   - Stats:      O(n·d) time, O(n) scratch per dimension.
//   - Initialize: O(n·d + N·d) time, O(N·d) memory (N = neurons).
package initializer
