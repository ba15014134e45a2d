// Package lattice provides the topology a self-organizing map trains on:
//
//   - Four connectivity schemes (Grid4, Grid8, Honeycomb, FuncNeighbor)
//   - Row-major indexing with (row, col) locations
//   - A cached all-pairs squared grid distance table
//
// Neighbor lists never wrap around the lattice border.
package lattice

import (
	"fmt"
	"sort"
)

// Precomputed (dRow, dCol) offsets per scheme. Honeycomb depends on row parity.
var (
	offsetsGrid4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsetsGrid8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
	offsetsHexEv = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, -1}, {1, -1}}
	offsetsHexOd = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 1}, {1, 1}}
)

// New builds a rows×cols lattice with the given connectivity.
// Returns ErrBadDimensions if rows or cols is not positive,
// ErrUnknownConnectivity for an unknown scheme.
// Complexity: O(N²) time and memory where N = rows×cols.
func New(rows, cols int, conn Connectivity) (*Lattice, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrBadDimensions)
	}
	if !conn.Valid() {
		return nil, fmt.Errorf("New: %v: %w", conn, ErrUnknownConnectivity)
	}
	size := rows * cols
	l := &Lattice{
		rows:      rows,
		cols:      cols,
		conn:      conn,
		locations: make([]Location, size),
	}
	for i := 0; i < size; i++ {
		l.locations[i] = Location{Row: i / cols, Col: i % cols}
	}
	// Cache squared distances; the table is symmetric with a zero diagonal.
	l.sqDist = make([]float64, size*size)
	for i := 0; i < size; i++ {
		li := l.locations[i]
		for j := i + 1; j < size; j++ {
			lj := l.locations[j]
			dr, dc := float64(li.Row-lj.Row), float64(li.Col-lj.Col)
			d := dr*dr + dc*dc
			l.sqDist[i*size+j] = d
			l.sqDist[j*size+i] = d
		}
	}
	if conn.Fixed() {
		l.neighbors = l.adjacency(conn)
	}

	return l, nil
}

// adjacency builds sorted neighbor lists for a fixed scheme over l's geometry.
func (l *Lattice) adjacency(conn Connectivity) [][]int {
	size := l.Size()
	lists := make([][]int, size)
	for i := 0; i < size; i++ {
		loc := l.locations[i]
		var offsets [][2]int
		switch conn {
		case Grid8:
			offsets = offsetsGrid8
		case Honeycomb:
			if loc.Row%2 == 0 {
				offsets = offsetsHexEv
			} else {
				offsets = offsetsHexOd
			}
		default:
			offsets = offsetsGrid4
		}
		nb := make([]int, 0, len(offsets))
		for _, d := range offsets {
			r, c := loc.Row+d[0], loc.Col+d[1]
			if !l.InBounds(r, c) {
				continue
			}
			nb = append(nb, l.Index(r, c))
		}
		sort.Ints(nb)
		lists[i] = nb
	}
	return lists
}

// AdjacencyFor returns neighbor lists of a fixed scheme laid over this
// lattice's geometry, regardless of the lattice's own scheme. FuncNeighbor
// falls back to Grid8. The result is freshly allocated.
func (l *Lattice) AdjacencyFor(conn Connectivity) [][]int {
	if !conn.Fixed() {
		conn = Grid8
	}
	if conn == l.conn {
		out := make([][]int, len(l.neighbors))
		for i := range l.neighbors {
			out[i] = append([]int(nil), l.neighbors[i]...)
		}
		return out
	}
	return l.adjacency(conn)
}

// Rows returns the number of lattice rows.
func (l *Lattice) Rows() int { return l.rows }

// Cols returns the number of lattice columns.
func (l *Lattice) Cols() int { return l.cols }

// Size returns rows×cols.
func (l *Lattice) Size() int { return l.rows * l.cols }

// Conn returns the connectivity scheme fixed at construction.
func (l *Lattice) Conn() Connectivity { return l.conn }

// InBounds reports whether (row, col) lies within the lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(row, col int) bool {
	return row >= 0 && row < l.rows && col >= 0 && col < l.cols
}

// Index maps (row, col) to the row-major neuron index row*Cols + col.
// Complexity: O(1).
func (l *Lattice) Index(row, col int) int {
	return row*l.cols + col
}

// Coordinate converts a row-major neuron index back to (row, col).
// Complexity: O(1).
func (l *Lattice) Coordinate(idx int) (row, col int) {
	return idx / l.cols, idx % l.cols
}

// Location returns the fixed grid position of neuron i.
func (l *Lattice) Location(i int) Location {
	return l.locations[i]
}

// Neighbors returns a copy of neuron i's sorted neighbor list.
// It is empty for FuncNeighbor lattices.
func (l *Lattice) Neighbors(i int) []int {
	if l.neighbors == nil {
		return []int{}
	}
	return append([]int(nil), l.neighbors[i]...)
}

// Neighborhood calls visit for every neuron other than winner that falls
// strictly inside the squared radius, together with its kernel influence.
// Fixed schemes only consider the winner's neighbor list; FuncNeighbor
// considers every neuron of the lattice. Visit order is ascending index.
// Complexity: O(d) for fixed schemes, O(N) for FuncNeighbor.
func (l *Lattice) Neighborhood(winner int, sqRadius float64, k Kernel, visit func(j int, influence float64)) {
	row := l.sqDist[winner*l.Size() : (winner+1)*l.Size()]
	if l.neighbors != nil {
		for _, j := range l.neighbors[winner] {
			if d := row[j]; d < sqRadius {
				visit(j, k.Influence(d, sqRadius))
			}
		}
		return
	}
	for j, d := range row {
		if j == winner || d >= sqRadius {
			continue
		}
		visit(j, k.Influence(d, sqRadius))
	}
}

// SquaredDistance returns the cached squared Euclidean grid distance
// between neurons i and j.
// Complexity: O(1).
func (l *Lattice) SquaredDistance(i, j int) float64 {
	return l.sqDist[i*l.Size()+j]
}
