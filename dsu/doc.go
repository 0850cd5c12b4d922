// Package dsu provides a disjoint-set forest (union-find) over dense integer
// indices 0..n-1.
//
// What & Why
//
//   - A Forest partitions {0..n-1} into disjoint sets and answers "are i and j
//     in the same set?" in near-constant amortized time.
//   - It is the component tracker behind Kruskal-style spanning-tree scans,
//     including the metric-closure MST in package steiner.
//
// Operations
//
//   - Find(i)     — root of i's set, with iterative path compression.
//   - Union(i, j) — merge two sets by rank; equal ranks bump the surviving root.
//   - SizeOf(i)   — number of elements in i's set.
//   - Same(i, j)  — whether i and j share a root.
//   - Sets()      — current number of disjoint sets.
//
// Complexity
//
//   - Time:  O(α(n)) amortized per Find/Union (α = inverse Ackermann).
//   - Space: O(n) for the parent, rank and size slices.
//
// A Forest is not safe for concurrent use; callers build one per computation.
package dsu
