package routegraph

// EdgeSpec is one raw map line: two city names and an unparsed weight.
type EdgeSpec struct {
	CityA  string
	CityB  string
	Weight string
}

// MapData is a tokenized map file.
type MapData struct {
	// DeclaredCount is the city count from the header line.
	DeclaredCount int

	// Edges are the remaining lines in file order.
	Edges []EdgeSpec
}

// CityPair is a normalized unordered pair of cities with A ≤ B. Tickets and
// blocked routes are both reported as CityPairs.
type CityPair struct {
	A     int
	B     int
	CityA string
	CityB string
}

// ResetReport counts what Reset cleared.
type ResetReport struct {
	TicketsRemoved  int
	RoutesUnblocked int
}

// pairKey is the map key of a normalized pair.
type pairKey struct {
	a int
	b int
}

func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}

	return pairKey{a: a, b: b}
}

func lessKey(x, y pairKey) bool {
	if x.a != y.a {
		return x.a < y.a
	}

	return x.b < y.b
}
