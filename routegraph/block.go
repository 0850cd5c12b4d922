package routegraph

import (
	"fmt"

	"github.com/katalvlaran/trainroute/apsp"
)

// BlockRoute marks the direct route cityA–cityB as blocked: both matrix
// cells gain apsp.BlockPenalty and the shortest-path cache is invalidated.
//
// Errors, checked in order: ErrUnknownCity, ErrAlreadyBlocked, ErrNoDirectRoute.
func (g *Graph) BlockRoute(cityA, cityB string) error {
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return err
	}

	return g.block(k)
}

// UnblockRoute lifts a block placed by BlockRoute.
//
// Errors: ErrUnknownCity, ErrAlreadyUnblocked.
func (g *Graph) UnblockRoute(cityA, cityB string) error {
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return err
	}

	return g.unblock(k)
}

func (g *Graph) block(k pairKey) error {
	if _, ok := g.blocked[k]; ok {
		return fmt.Errorf("%s - %s: %w", g.names[k.a], g.names[k.b], ErrAlreadyBlocked)
	}
	if g.adj[k.a][k.b] == 0 {
		return fmt.Errorf("%s - %s: %w", g.names[k.a], g.names[k.b], ErrNoDirectRoute)
	}
	g.shift(k, apsp.BlockPenalty)
	g.blocked[k] = struct{}{}

	return nil
}

func (g *Graph) unblock(k pairKey) error {
	if _, ok := g.blocked[k]; !ok {
		return fmt.Errorf("%s - %s: %w", g.names[k.a], g.names[k.b], ErrAlreadyUnblocked)
	}
	g.shift(k, -apsp.BlockPenalty)
	delete(g.blocked, k)

	return nil
}

// shift is the only writer of matrix cells after Load. It keeps the matrix
// symmetric and drops the shortest-path cache in the same step.
func (g *Graph) shift(k pairKey, delta int) {
	g.adj[k.a][k.b] += delta
	g.adj[k.b][k.a] += delta
	g.paths.Invalidate()
}

// IsBlocked reports whether the route cityA–cityB is blocked.
func (g *Graph) IsBlocked(cityA, cityB string) (bool, error) {
	k, err := g.pairOf(cityA, cityB)
	if err != nil {
		return false, err
	}
	_, ok := g.blocked[k]

	return ok, nil
}

// ListBlockedRoutes returns the blocked routes ordered by (A, B).
func (g *Graph) ListBlockedRoutes() []CityPair { return g.listPairs(g.blocked) }

// BlockedCount returns the number of blocked routes.
func (g *Graph) BlockedCount() int { return len(g.blocked) }

// Reset removes every ticket and unblocks every route. Individual unblock
// failures are ignored; the blocked set is empty afterwards either way.
func (g *Graph) Reset() ResetReport {
	report := ResetReport{
		TicketsRemoved:  len(g.tickets),
		RoutesUnblocked: len(g.blocked),
	}

	g.tickets = make(map[pairKey]struct{})
	g.usage = make(map[int]int)

	for _, p := range g.ListBlockedRoutes() {
		_ = g.unblock(keyOf(p.A, p.B))
	}
	g.blocked = make(map[pairKey]struct{})

	return report
}
