package routegraph

import (
	"github.com/katalvlaran/trainroute/apsp"
	"github.com/katalvlaran/trainroute/steiner"
)

// ShortestPaths returns the session's shortest-path engine, refreshed.
func (g *Graph) ShortestPaths() *apsp.Engine {
	g.paths.EnsureFresh()

	return g.paths
}

// ComputeSteinerRoute returns the routes to claim so that every ticket is
// connected, and their total cost.
//
// Errors: ErrEmptyTicketSet, steiner.ErrUnreachableTicketCity.
func (g *Graph) ComputeSteinerRoute(opts ...steiner.Option) (steiner.Result, error) {
	if len(g.tickets) == 0 {
		return steiner.Result{}, ErrEmptyTicketSet
	}

	return steiner.Approximate(g.ShortestPaths(), g, g.TicketCities(), opts...)
}
