package routegraph_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trainroute/routegraph"
)

func TestLoad_FirstSeenIndices(t *testing.T) {
	g := mustLoad(t, westMap)

	require.Equal(t, 7, g.CityCount(), "the header is a hint; seven cities appear")
	assert.Equal(t,
		[]string{"seattle", "portland", "helena", "saltlakecity", "sanfrancisco", "denver", "oklahomacity"},
		g.CityNames())

	idx, err := g.NameToIndex("DENVER")
	require.NoError(t, err)
	assert.Equal(t, 5, idx)

	name, err := g.IndexToName(2)
	require.NoError(t, err)
	assert.Equal(t, "helena", name)

	_, err = g.IndexToName(99)
	assert.ErrorIs(t, err, routegraph.ErrUnknownCity)
	_, err = g.NameToIndex("boston")
	assert.ErrorIs(t, err, routegraph.ErrUnknownCity)

	assert.Equal(t, 6, g.Weight(0, 2))
	assert.Equal(t, 6, g.Weight(2, 0))
	assert.Zero(t, g.Weight(0, 5))
	assert.Zero(t, g.Weight(-1, 0))
	requireSymmetric(t, g)
}

func TestLoad_SortedNames(t *testing.T) {
	g := mustLoad(t, westMap)
	assert.Equal(t,
		[]string{"denver", "helena", "oklahomacity", "portland", "saltlakecity", "sanfrancisco", "seattle"},
		g.SortedCityNames())
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name     string
		edges    []routegraph.EdgeSpec
		declared int
	}{
		{"ZeroDeclared", []routegraph.EdgeSpec{{"a", "b", "1"}}, 0},
		{"TooManyCities", []routegraph.EdgeSpec{{"a", "b", "1"}, {"b", "c", "1"}}, 2},
		{"NonNumericWeight", []routegraph.EdgeSpec{{"a", "b", "x"}}, 2},
		{"NegativeWeight", []routegraph.EdgeSpec{{"a", "b", "-1"}}, 2},
		{"PenaltySizedWeight", []routegraph.EdgeSpec{{"a", "b", "1000000"}}, 2},
		{"SelfLoop", []routegraph.EdgeSpec{{"a", "A", "1"}}, 2},
		{"EmptyName", []routegraph.EdgeSpec{{" ", "b", "1"}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := routegraph.Load(tc.edges, tc.declared)
			assert.ErrorIs(t, err, routegraph.ErrMalformedInput)
		})
	}
}

func TestLoad_ZeroWeightIsNoEdge(t *testing.T) {
	g, err := routegraph.Load([]routegraph.EdgeSpec{{"a", "b", "0"}, {"b", "c", "2"}}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.CityCount())
	assert.Zero(t, g.Weight(0, 1))
	assert.ErrorIs(t, g.BlockRoute("a", "b"), routegraph.ErrNoDirectRoute)
}

func TestLoad_RepeatedPairLastWins(t *testing.T) {
	g, err := routegraph.Load([]routegraph.EdgeSpec{{"a", "b", "3"}, {"B", "a", "7"}}, 2)
	require.NoError(t, err)
	assert.Equal(t, 7, g.Weight(0, 1))
	assert.Equal(t, 7, g.Weight(1, 0))
}

func TestParseMap(t *testing.T) {
	data, err := routegraph.ParseMap(strings.NewReader("\n3\n\na b 2\nb   c\t5\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, data.DeclaredCount)
	assert.Equal(t, []routegraph.EdgeSpec{{"a", "b", "2"}, {"b", "c", "5"}}, data.Edges)
}

func TestParseMap_Malformed(t *testing.T) {
	cases := map[string]string{
		"Empty":        "",
		"OnlyBlank":    "\n\n",
		"BadHeader":    "four\na b 1\n",
		"HeaderFields": "4 5\na b 1\n",
		"ShortLine":    "2\na b\n",
		"LongLine":     "2\na b 1 2\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := routegraph.LoadMap(strings.NewReader(src))
			assert.ErrorIs(t, err, routegraph.ErrMalformedInput)
		})
	}
}

func TestLoadMapFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.txt")
	require.NoError(t, os.WriteFile(path, []byte(squareMap), 0o644))

	g, err := routegraph.LoadMapFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.CityCount())

	_, err = routegraph.LoadMapFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("2\na b heavy\n"), 0o644))
	_, err = routegraph.LoadMapFile(bad)
	assert.ErrorIs(t, err, routegraph.ErrMalformedInput)
}
