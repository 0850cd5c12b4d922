package steiner

import (
	"errors"

	"github.com/katalvlaran/trainroute/apsp"
)

var (
	// ErrUnreachableTicketCity indicates that connecting every terminal would
	// require crossing a blocked route, or that no route exists at all.
	ErrUnreachableTicketCity = errors.New("steiner: unable to connect all ticket cities")

	// ErrNoTerminals indicates an empty terminal list.
	ErrNoTerminals = errors.New("steiner: no terminal cities")
)

// PathTable answers shortest-path queries between city indices.
// *apsp.Engine satisfies it.
type PathTable interface {
	Size() int
	Distance(i, j int) (int, error)
	NextHop(i, j int) (int, error)
}

// WeightTable returns the direct edge weight between adjacent cities.
type WeightTable interface {
	Weight(i, j int) int
}

// Edge is an undirected city pair with U < V for route edges. Closure edges
// keep the (u, v) orientation they were scanned with.
type Edge struct {
	U      int
	V      int
	Weight int
}

// Result is the outcome of Approximate.
type Result struct {
	// Cost is the total weight of Routes.
	Cost int

	// Routes lists the real edges to claim, ordered by (U, V), each once.
	Routes []Edge

	// Closure lists the metric-closure MST edges in the order Kruskal took them.
	Closure []Edge
}

// Options configures Approximate.
type Options struct {
	// UnreachableCost is the running MST cost at which the scan gives up.
	UnreachableCost int
}

// Option mutates Options.
type Option func(*Options)

// WithUnreachableCost overrides the abort threshold. It panics on a
// non-positive value.
func WithUnreachableCost(c int) Option {
	if c <= 0 {
		panic("steiner: UnreachableCost must be positive")
	}

	return func(o *Options) { o.UnreachableCost = c }
}

// DefaultOptions returns Options with UnreachableCost = apsp.BlockPenalty.
func DefaultOptions() Options {
	return Options{UnreachableCost: apsp.BlockPenalty}
}
