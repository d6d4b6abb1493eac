package parser_test

import (
	"testing"

	"github.com/arcpost/arcpost/apperr"
	"github.com/arcpost/arcpost/core"
	"github.com/arcpost/arcpost/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUndirectedDefaultFormat(t *testing.T) {
	text := `Graph Type: undirected
N: 4
M: 4
Depot ID: 1

LINKS
1,2,5,true
2,3,3,true
3,4,7,true
4,1,2,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, core.Undirected, g.Kind())
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 4, g.NumLinks())
	assert.Equal(t, 1, g.DepotID())
	assert.Len(t, g.RequiredLinks(), 4)

	l, err := g.Link(1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.From)
	assert.Equal(t, 2, l.To)
	assert.EqualValues(t, 5, l.Cost)
}

func TestParseWindyRequiresReverseCost(t *testing.T) {
	text := `Graph Type: windy
N: 3

LINKS
1,2,4,8,true
2,3,5,3,true
3,1,6,6,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	l, err := g.Link(1)
	require.NoError(t, err)
	assert.EqualValues(t, 4, l.Cost)
	assert.EqualValues(t, 8, l.ReverseCost)
}

func TestParseMixedExplicitLineFormat(t *testing.T) {
	text := `Graph Type: mixed
N: 3

LINKS
LINE FORMAT: v1,v2,cost,isdirected,required
1,2,4,true,true
2,3,5,false,false
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	l1, err := g.Link(1)
	require.NoError(t, err)
	assert.True(t, l1.Directed)
	assert.True(t, l1.Required)

	l2, err := g.Link(2)
	require.NoError(t, err)
	assert.False(t, l2.Directed)
	assert.False(t, l2.Required)
}

func TestParseVerticesSectionSetsCoords(t *testing.T) {
	text := `Graph Type: undirected
N: 2

VERTICES
1,0,0
2,3,4
END VERTICES

LINKS
1,2,5,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	v2, err := g.Vertex(2)
	require.NoError(t, err)
	assert.True(t, v2.HasCoords)
	assert.Equal(t, 3.0, v2.X)
	assert.Equal(t, 4.0, v2.Y)
}

func TestParseMissingGraphTypeIsParseError(t *testing.T) {
	text := `N: 2

LINKS
1,2,5,true
END LINKS
`
	_, err := parser.Parse(text)
	require.Error(t, err)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseEmptyLinksSectionIsParseError(t *testing.T) {
	text := `Graph Type: undirected
N: 2

LINKS
END LINKS
`
	_, err := parser.Parse(text)
	require.Error(t, err)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestParseMalformedLineSkippedWithRemainderKept(t *testing.T) {
	text := `Graph Type: undirected
N: 3

LINKS
1,2,notacost,true
2,3,5,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 1, g.NumLinks())
	l, err := g.Link(1)
	require.NoError(t, err)
	assert.Equal(t, 2, l.From)
	assert.Equal(t, 3, l.To)
}

func TestParseNSubstitutedWhenHeaderAbsent(t *testing.T) {
	text := `Graph Type: undirected

LINKS
1,2,5,true
2,5,3,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
}

func TestParseNSubstitutedWhenSmallerThanMaxSeen(t *testing.T) {
	text := `Graph Type: undirected
N: 2

LINKS
1,5,5,true
END LINKS
`
	g, err := parser.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NumVertices())
}

func TestParseNonPositiveVertexIDIsParseError(t *testing.T) {
	text := `Graph Type: undirected
N: 2

LINKS
0,2,5,true
END LINKS
`
	_, err := parser.Parse(text)
	require.Error(t, err)
	var pe *apperr.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestSerializeParseRoundTrip(t *testing.T) {
	g := core.NewGraph(core.Windy)
	g.EnsureVertices(3)
	_, err := g.AddLink(1, 2, 4, core.WithReverseCost(8), core.WithRequired())
	require.NoError(t, err)
	_, err = g.AddLink(2, 3, 5, core.WithReverseCost(3), core.WithRequired())
	require.NoError(t, err)
	require.NoError(t, g.SetDepot(1))

	text := parser.Serialize(g)
	got, err := parser.Parse(text)
	require.NoError(t, err)

	assert.Equal(t, g.Kind(), got.Kind())
	assert.Equal(t, g.NumVertices(), got.NumVertices())
	assert.Equal(t, g.NumLinks(), got.NumLinks())
	assert.Equal(t, g.DepotID(), got.DepotID())

	for _, l := range g.Links() {
		gl, err := got.Link(l.ID)
		require.NoError(t, err)
		assert.Equal(t, l.From, gl.From)
		assert.Equal(t, l.To, gl.To)
		assert.Equal(t, l.Cost, gl.Cost)
		assert.Equal(t, l.ReverseCost, gl.ReverseCost)
		assert.Equal(t, l.Required, gl.Required)
	}
}
