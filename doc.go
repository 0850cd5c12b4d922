// Package trainroute plans which train routes to claim in a game of Ticket
// to Ride: given a board, a hand of destination tickets and the routes
// opponents have already taken, it picks a cheap set of routes connecting
// every ticket city.
//
// What is inside:
//
//	dsu/        — disjoint-set forest with union by rank and path compression
//	apsp/       — lazily rebuilt all-pairs shortest paths (Floyd–Warshall)
//	steiner/    — metric-closure MST 2-approximation of the Steiner tree
//	routegraph/ — the game session: board, tickets, blocked routes
//	internal/   — shell, configuration and logging for the CLI
//	cmd/        — the trainroute command
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │1
//	    4   C
//	    │   │1
//	    D───┘
//
//	ticket A–C plans A–B, B–C for 2 trains; once an opponent claims A–B
//	the plan becomes A–D, D–C for 5.
//
// Blocking a route does not delete it: its weight grows by a large penalty so
// it is used only when nothing else connects the tickets, and a plan that
// still needs one is reported as unreachable.
//
//	go run ./cmd/trainroute -map maps/usa.txt
package trainroute
