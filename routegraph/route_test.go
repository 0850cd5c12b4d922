package routegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/trainroute/routegraph"
	"github.com/katalvlaran/trainroute/steiner"
)

// hubMap: three spokes of 2 around a hub plus a direct a-b of 5.
// Indices: a=0 hub=1 b=2 c=3.
const hubMap = `4
a hub 2
b hub 2
c hub 2
a b 5
`

func TestComputeSteinerRoute_Square(t *testing.T) {
	g := mustLoad(t, squareMap)
	require.NoError(t, g.AddTicket("a", "c"))

	res, err := g.ComputeSteinerRoute()
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, []steiner.Edge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 1}}, res.Routes)
}

func TestComputeSteinerRoute_BlockedDetour(t *testing.T) {
	g := mustLoad(t, squareMap)
	require.NoError(t, g.AddTicket("a", "c"))
	_, err := g.ComputeSteinerRoute()
	require.NoError(t, err)

	require.NoError(t, g.BlockRoute("a", "b"))
	res, err := g.ComputeSteinerRoute()
	require.NoError(t, err)
	assert.Equal(t, 5, res.Cost)
	assert.Equal(t, []steiner.Edge{{U: 0, V: 3, Weight: 4}, {U: 2, V: 3, Weight: 1}}, res.Routes)
}

func TestComputeSteinerRoute_Unreachable(t *testing.T) {
	g := mustLoad(t, squareMap)
	require.NoError(t, g.AddTicket("a", "c"))
	require.NoError(t, g.BlockRoute("a", "b"))
	require.NoError(t, g.BlockRoute("a", "d"))

	_, err := g.ComputeSteinerRoute()
	assert.ErrorIs(t, err, steiner.ErrUnreachableTicketCity)

	// Lifting one block makes it routable again.
	require.NoError(t, g.UnblockRoute("a", "d"))
	res, err := g.ComputeSteinerRoute()
	require.NoError(t, err)
	assert.Equal(t, 5, res.Cost)
}

func TestComputeSteinerRoute_Disconnected(t *testing.T) {
	g := mustLoad(t, "4\na b 1\nc d 1\n")
	require.NoError(t, g.AddTicket("a", "c"))

	_, err := g.ComputeSteinerRoute()
	assert.ErrorIs(t, err, steiner.ErrUnreachableTicketCity)
}

func TestComputeSteinerRoute_EmptyTickets(t *testing.T) {
	g := mustLoad(t, squareMap)
	_, err := g.ComputeSteinerRoute()
	assert.ErrorIs(t, err, routegraph.ErrEmptyTicketSet)

	require.NoError(t, g.AddTicket("a", "b"))
	g.Reset()
	_, err = g.ComputeSteinerRoute()
	assert.ErrorIs(t, err, routegraph.ErrEmptyTicketSet)
}

// TestComputeSteinerRoute_SharedSegment: three tickets over a hub share the
// a-hub spoke; it is claimed and paid once.
func TestComputeSteinerRoute_SharedSegment(t *testing.T) {
	g := mustLoad(t, hubMap)
	require.NoError(t, g.AddTicket("a", "b"))
	require.NoError(t, g.AddTicket("a", "c"))
	require.NoError(t, g.AddTicket("b", "c"))

	res, err := g.ComputeSteinerRoute()
	require.NoError(t, err)
	assert.Equal(t, 6, res.Cost)
	assert.Equal(t, []steiner.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 2},
	}, res.Routes)

	closure := 0
	for _, e := range res.Closure {
		closure += e.Weight
	}
	assert.Equal(t, 8, closure, "the closure MST pays the shared spoke twice")
}

func TestComputeSteinerRoute_Options(t *testing.T) {
	g := mustLoad(t, squareMap)
	require.NoError(t, g.AddTicket("a", "d"))

	_, err := g.ComputeSteinerRoute(steiner.WithUnreachableCost(2))
	assert.ErrorIs(t, err, steiner.ErrUnreachableTicketCity)
}

func TestComputeSteinerRoute_WestBoard(t *testing.T) {
	g := mustLoad(t, westMap)
	require.NoError(t, g.AddTicket("seattle", "denver"))
	require.NoError(t, g.AddTicket("portland", "oklahomacity"))

	res, err := g.ComputeSteinerRoute()
	require.NoError(t, err)

	// Closure MST: seattle-portland 1, denver-okc 4, portland-denver 9.
	// The last expands to portland-slc-denver.
	sum := 0
	for _, r := range res.Routes {
		sum += r.Weight
		assert.Equal(t, g.Weight(r.U, r.V), r.Weight)
	}
	assert.Equal(t, sum, res.Cost)
	assert.Equal(t, 14, res.Cost)
	assert.Equal(t, []steiner.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 3, Weight: 6},
		{U: 3, V: 5, Weight: 3},
		{U: 5, V: 6, Weight: 4},
	}, res.Routes)
}
