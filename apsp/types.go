package apsp

import "errors"

const (
	// Infinity is the distance of an unreachable pair. Matrix cells at or
	// above it are treated as absent edges.
	Infinity = 1_000_000_000

	// BlockPenalty is the additive weight a blocked edge carries. A path
	// cost at or above it had to cross at least one blocked edge.
	BlockPenalty = 1_000_000

	// NoHop is the NextHop value for a disconnected pair.
	NoHop = -1
)

var (
	// ErrIndexOutOfRange indicates a city index outside [0, Size()).
	ErrIndexOutOfRange = errors.New("apsp: index out of range")

	// ErrNoPath indicates that no path of any cost joins the two cities.
	ErrNoPath = errors.New("apsp: no path between cities")
)

// Matrix is the read view the Engine needs from an adjacency matrix.
// Weight(i, j) must equal Weight(j, i) for undirected graphs, but the
// engine itself does not rely on symmetry.
type Matrix interface {
	// Size returns the number of cities N.
	Size() int

	// Weight returns the raw cell (i, j); 0 means no direct edge.
	Weight(i, j int) int
}
