// Package apsp computes all-pairs shortest paths over a small integer
// adjacency matrix with Floyd–Warshall and memoizes the result until the
// owner of the matrix invalidates it.
//
// Weight encoding
//
//	0                     — no direct edge
//	w  (0 < w < Infinity) — direct edge of weight w
//
// Blocked edges are stored by the caller as base+BlockPenalty. They stay
// finite, so the relaxation only routes through them when nothing cheaper
// exists, and any distance ≥ BlockPenalty signals that a blocked edge was
// unavoidable. Unreachable pairs keep Distance == Infinity and NextHop == -1.
//
// Memoization
//
// An Engine reads its Matrix lazily. Every query first calls EnsureFresh,
// which is a no-op while the table is fresh; the matrix owner calls
// Invalidate in the same operation that mutates a cell, so a stale table is
// never observable.
//
// Complexity
//
//   - EnsureFresh: O(N³) time when stale, O(1) when fresh.
//   - Storage:     O(N²) for the distance and next-hop tables.
//
// An Engine is not safe for concurrent use.
package apsp
