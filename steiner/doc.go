// Package steiner approximates a minimum Steiner tree: the cheapest set of
// real graph edges that connects a chosen subset of cities (the terminals).
//
// The exact problem is NP-hard. Approximate implements the classic metric
// closure 2-approximation:
//
//  1. Build the metric closure over the terminals only: a complete graph whose
//     edge (u,v) weighs the shortest-path distance between u and v.
//  2. Sort closure edges by (weight, u, v).
//  3. Run Kruskal over the closure with a dsu.Forest. The running cost is
//     watched against UnreachableCost: reaching it means some terminal can
//     only be joined through a blocked edge, or not at all, and the call fails
//     with ErrUnreachableTicketCity. The scan stops as soon as one set holds
//     every terminal.
//  4. Expand each closure edge back into real edges by walking next hops.
//     An edge shared by two expanded paths is claimed once and its weight is
//     subtracted from the cost.
//
// Guarantees
//
//	OPT ≤ Result.Cost ≤ MST(closure) ≤ 2·OPT
//
// Result.Cost always equals the sum of Result.Routes weights.
//
// Complexity: O(T² log T) for the closure sort plus O(T·N) for the path
// expansion, with T terminals and N cities. Shortest paths come from the
// caller (see package apsp).
package steiner
