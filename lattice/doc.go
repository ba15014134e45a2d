// Package lattice describes the fixed 2D grid of neurons a self-organizing
// map is laid out on: where every neuron sits, who its neighbors are, and how
// strongly a winner pulls the neurons around it.
//
// What:
//
//   - Lattice wraps a rows×cols grid of neurons in row-major order.
//   - Four connectivity schemes: Grid4, Grid8, Honeycomb and FuncNeighbor.
//   - Fixed schemes precompute a sorted neighbor list per neuron.
//   - FuncNeighbor keeps no list; every neuron may influence every other one,
//     weighted by its Euclidean grid distance.
//   - Pairwise squared grid distances are cached once at construction.
//
// Why:
//
//   - The training loop asks "how far is neuron j from the winner i" millions
//     of times; answering from a flat cache keeps the hot path branch-free.
//
// Complexity:
//
//   - New:              O(N²) time and memory for the distance cache (N = rows×cols).
//   - Neighbors:        O(d) copy, d ≤ 8.
//   - SquaredDistance:  O(1).
//
// Kernels:
//
//   - Gaussian: exp(-d²/(2r²)) inside the radius.
//   - Linear:   1 - d/r inside the radius.
//
// Both are 1 at distance 0 and 0 at or beyond the radius.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols is not positive.
//   - ErrUnknownConnectivity: the scheme is not one of the four known values.
package lattice
