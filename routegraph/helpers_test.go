package routegraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trainroute/routegraph"
)

// Board fixtures in map-file form.
const (
	// squareMap: a-b:1, b-c:1, c-d:1, a-d:4 → indices a=0 b=1 c=2 d=3.
	squareMap = `4
a b 1
b c 1
c d 1
a d 4
`

	// westMap is a small slice of a real board; names share prefixes on purpose.
	westMap = `8
Seattle Portland 1
Seattle Helena 6
Portland SaltLakeCity 6
Portland SanFrancisco 5
SanFrancisco SaltLakeCity 5
Helena SaltLakeCity 3
Helena Denver 4
SaltLakeCity Denver 3
Denver OklahomaCity 4
`
)

func mustLoad(t *testing.T, src string) *routegraph.Graph {
	t.Helper()
	g, err := routegraph.LoadMap(strings.NewReader(src))
	require.NoError(t, err)

	return g
}

// snapshot copies the full matrix through the public read API.
func snapshot(g *routegraph.Graph) [][]int {
	n := g.CityCount()
	out := make([][]int, n)
	for i := range out {
		out[i] = make([]int, n)
		for j := range out[i] {
			out[i][j] = g.Weight(i, j)
		}
	}

	return out
}

func requireSymmetric(t *testing.T, g *routegraph.Graph) {
	t.Helper()
	m := snapshot(g)
	for i := range m {
		require.Zero(t, m[i][i], "no self-loops")
		for j := range m {
			require.Equal(t, m[i][j], m[j][i], "cell (%d,%d)", i, j)
		}
	}
}
