// Package routegraph is the game session: it owns city identity, the
// weighted adjacency matrix, the ticket registry and the blocked-route set,
// and it is the only place those are mutated.
//
// What & Why
//
//	A board is an undirected graph of cities. A ticket is a pair of cities the
//	player must connect. Routes can be blocked (claimed by an opponent); a
//	blocked route stays in the matrix with an additive penalty of
//	apsp.BlockPenalty so that shortest paths avoid it whenever they can.
//
// Lifecycle
//
//	g, err := routegraph.LoadMapFile("usa.txt") // or Load(edges, n)
//	_ = g.AddTicket("denver", "phoenix")
//	_ = g.BlockRoute("denver", "santa_fe")
//	res, err := g.ComputeSteinerRoute()          // routes to claim + cost
//
// Cache discipline
//
//	The Graph owns one *apsp.Engine bound to its matrix. BlockRoute,
//	UnblockRoute and Reset invalidate it in the same call that changes a
//	matrix cell; ticket operations never touch it.
//
// Errors
//
//	Every failure is a sentinel from errors.go, wrapped with the offending
//	city names. Branch with errors.Is. Only Reset swallows errors, while it
//	unblocks everything.
//
// A Graph is not safe for concurrent use; one session has one owner.
package routegraph
