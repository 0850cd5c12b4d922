package routegraph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/trainroute/apsp"
)

// Graph is one game session over a loaded board.
type Graph struct {
	names  []string       // index → canonical name
	index  map[string]int // canonical name → index
	sorted []string       // canonical names in lexicographic order

	adj [][]int // symmetric; 0 = no edge, else base + BlockPenalty*blocked

	tickets map[pairKey]struct{}
	usage   map[int]int // city → tickets referencing it, never 0
	blocked map[pairKey]struct{}

	paths *apsp.Engine
}

// Load builds a session from raw edge lines. City indices are assigned in
// first-seen order; names are trimmed and lowercased.
//
// declaredCount is a sanity hint: it must be positive and at least the
// number of distinct cities seen; the matrix is sized to the cities seen.
// A weight must be an integer in [0, apsp.BlockPenalty); 0 leaves the pair
// unconnected. A repeated pair keeps the last weight. Self-loops are rejected.
//
// Errors: ErrMalformedInput, wrapped with the offending edge number.
// Complexity: O(E + N²).
func Load(edges []EdgeSpec, declaredCount int) (*Graph, error) {
	if declaredCount <= 0 {
		return nil, fmt.Errorf("declared city count %d: %w", declaredCount, ErrMalformedInput)
	}

	type parsed struct{ a, b, w int }
	var (
		names = make([]string, 0, declaredCount)
		index = make(map[string]int, declaredCount)
		lines = make([]parsed, 0, len(edges))
	)
	intern := func(raw string) (int, bool) {
		name := canonical(raw)
		if name == "" {
			return 0, false
		}
		if idx, ok := index[name]; ok {
			return idx, true
		}
		index[name] = len(names)
		names = append(names, name)

		return len(names) - 1, true
	}

	for n, e := range edges {
		a, okA := intern(e.CityA)
		b, okB := intern(e.CityB)
		if !okA || !okB {
			return nil, fmt.Errorf("edge %d: empty city name: %w", n+1, ErrMalformedInput)
		}
		if a == b {
			return nil, fmt.Errorf("edge %d: self-loop at %q: %w", n+1, names[a], ErrMalformedInput)
		}
		w, err := strconv.Atoi(strings.TrimSpace(e.Weight))
		if err != nil {
			return nil, fmt.Errorf("edge %d: weight %q is not a number: %w", n+1, e.Weight, ErrMalformedInput)
		}
		if w < 0 || w >= apsp.BlockPenalty {
			return nil, fmt.Errorf("edge %d: weight %d outside [0,%d): %w", n+1, w, apsp.BlockPenalty, ErrMalformedInput)
		}
		lines = append(lines, parsed{a: a, b: b, w: w})
	}
	if len(names) > declaredCount {
		return nil, fmt.Errorf("%d cities found, %d declared: %w", len(names), declaredCount, ErrMalformedInput)
	}

	n := len(names)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}
	for _, l := range lines {
		adj[l.a][l.b] = l.w
		adj[l.b][l.a] = l.w
	}

	sorted := make([]string, n)
	copy(sorted, names)
	sort.Strings(sorted)

	g := &Graph{
		names:   names,
		index:   index,
		sorted:  sorted,
		adj:     adj,
		tickets: make(map[pairKey]struct{}),
		usage:   make(map[int]int),
		blocked: make(map[pairKey]struct{}),
	}
	g.paths = apsp.New(g)

	return g, nil
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Size returns the number of cities; it makes Graph an apsp.Matrix.
func (g *Graph) Size() int { return len(g.names) }

// CityCount returns the number of cities.
func (g *Graph) CityCount() int { return len(g.names) }

// Weight returns the raw matrix cell (i, j), including any block penalty.
// Out-of-range indices read as 0.
func (g *Graph) Weight(i, j int) int {
	if !g.valid(i) || !g.valid(j) {
		return 0
	}

	return g.adj[i][j]
}

// IndexToName returns the canonical name of city idx.
func (g *Graph) IndexToName(idx int) (string, error) {
	if !g.valid(idx) {
		return "", fmt.Errorf("index %d: %w", idx, ErrUnknownCity)
	}

	return g.names[idx], nil
}

// NameToIndex returns the index of an exact (case-insensitive) city name.
func (g *Graph) NameToIndex(name string) (int, error) {
	idx, ok := g.index[canonical(name)]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownCity)
	}

	return idx, nil
}

// CityNames returns the canonical names in index order.
func (g *Graph) CityNames() []string {
	out := make([]string, len(g.names))
	copy(out, g.names)

	return out
}

// SortedCityNames returns the canonical names in lexicographic order.
func (g *Graph) SortedCityNames() []string {
	out := make([]string, len(g.sorted))
	copy(out, g.sorted)

	return out
}

func (g *Graph) valid(idx int) bool { return idx >= 0 && idx < len(g.names) }

// pairOf resolves two exact names to their normalized key.
func (g *Graph) pairOf(cityA, cityB string) (pairKey, error) {
	a, err := g.NameToIndex(cityA)
	if err != nil {
		return pairKey{}, err
	}
	b, err := g.NameToIndex(cityB)
	if err != nil {
		return pairKey{}, err
	}

	return keyOf(a, b), nil
}

// listPairs returns the keys of set as CityPairs ordered by (A, B).
func (g *Graph) listPairs(set map[pairKey]struct{}) []CityPair {
	keys := make([]pairKey, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return lessKey(keys[i], keys[j]) })

	out := make([]CityPair, len(keys))
	for i, k := range keys {
		out[i] = CityPair{A: k.a, B: k.b, CityA: g.names[k.a], CityB: g.names[k.b]}
	}

	return out
}
