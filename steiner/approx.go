package steiner

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/trainroute/dsu"
)

// Approximate connects every terminal city using real edges and returns the
// routes to claim with their total cost.
//
// Steps:
//  1. De-duplicate and sort terminals; empty → ErrNoTerminals.
//  2. Metric closure over ordered pairs of distinct terminals.
//  3. Sort closure edges by (weight, u, v).
//  4. Kruskal with early exit; cost ≥ UnreachableCost → ErrUnreachableTicketCity.
//  5. Expand closure edges into real edges, claiming shared edges once.
//
// Errors from paths (e.g. apsp.ErrIndexOutOfRange for a bad terminal) are
// returned wrapped.
func Approximate(paths PathTable, weights WeightTable, terminals []int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 1. Normalize terminals.
	cities := uniqueSorted(terminals)
	if len(cities) == 0 {
		return Result{}, ErrNoTerminals
	}

	// 2-3. Metric closure, sorted.
	closure, err := metricClosure(paths, cities)
	if err != nil {
		return Result{}, err
	}

	// 4. Kruskal over the closure.
	mst, cost, err := kruskal(closure, paths.Size(), len(cities), o.UnreachableCost)
	if err != nil {
		return Result{}, err
	}

	// 5. Expand into real edges.
	routes, cost, err := expand(paths, weights, mst, cost)
	if err != nil {
		return Result{}, err
	}

	return Result{Cost: cost, Routes: routes, Closure: mst}, nil
}

func uniqueSorted(in []int) []int {
	out := make([]int, 0, len(in))
	seen := make(map[int]struct{}, len(in))
	for _, c := range in {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Ints(out)

	return out
}

// metricClosure returns one edge per ordered pair (u, v), u != v, weighted by
// the shortest distance, sorted by (weight, u, v).
func metricClosure(paths PathTable, cities []int) ([]Edge, error) {
	edges := make([]Edge, 0, len(cities)*(len(cities)-1))
	for _, u := range cities {
		for _, v := range cities {
			if u == v {
				continue
			}
			d, err := paths.Distance(u, v)
			if err != nil {
				return nil, fmt.Errorf("steiner: closure distance %d-%d: %w", u, v, err)
			}
			edges = append(edges, Edge{U: u, V: v, Weight: d})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.U != b.U {
			return a.U < b.U
		}

		return a.V < b.V
	})

	return edges, nil
}

// kruskal scans sorted closure edges over a forest of n cities and stops once
// a set holds all k terminals.
func kruskal(sorted []Edge, n, k, limit int) ([]Edge, int, error) {
	forest := dsu.New(n)
	var (
		mst  = make([]Edge, 0, k-1)
		cost int
	)
	for _, e := range sorted {
		if !forest.Same(e.U, e.V) {
			mst = append(mst, e)
			cost += e.Weight
			if cost >= limit {
				return nil, 0, fmt.Errorf("joining %d and %d costs %d: %w", e.U, e.V, cost, ErrUnreachableTicketCity)
			}
			forest.Union(e.U, e.V)
		}
		if forest.SizeOf(e.U) == k {
			break
		}
	}

	return mst, cost, nil
}

type pair struct{ u, v int }

// expand walks every closure edge hop by hop. A real edge already claimed is
// skipped and its weight removed from cost.
func expand(paths PathTable, weights WeightTable, mst []Edge, cost int) ([]Edge, int, error) {
	claimed := make(map[pair]int)
	for _, e := range mst {
		cur := e.U
		for cur != e.V {
			nxt, err := paths.NextHop(cur, e.V)
			if err != nil {
				return nil, 0, fmt.Errorf("steiner: next hop %d-%d: %w", cur, e.V, err)
			}
			if nxt < 0 {
				return nil, 0, fmt.Errorf("no hop from %d towards %d: %w", cur, e.V, ErrUnreachableTicketCity)
			}
			key := pair{u: cur, v: nxt}
			if key.u > key.v {
				key.u, key.v = key.v, key.u
			}
			w := weights.Weight(cur, nxt)
			if _, dup := claimed[key]; dup {
				cost -= w
			} else {
				claimed[key] = w
			}
			cur = nxt
		}
	}

	routes := make([]Edge, 0, len(claimed))
	for k, w := range claimed {
		routes = append(routes, Edge{U: k.u, V: k.v, Weight: w})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].U != routes[j].U {
			return routes[i].U < routes[j].U
		}

		return routes[i].V < routes[j].V
	})

	return routes, cost, nil
}
