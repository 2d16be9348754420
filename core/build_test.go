package core_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/transitpath/core"
)

type span struct{ km float64 }

func vtx(ids ...string) []core.Vertex[string] {
	out := make([]core.Vertex[string], 0, len(ids))
	for _, id := range ids {
		out = append(out, core.Vertex[string]{ID: id, Attr: "attr-" + id})
	}

	return out
}

type BuildSuite struct {
	suite.Suite
	g *core.Graph[string, span]
}

func (s *BuildSuite) SetupTest() {
	// A-B, B-C, plus a parallel B-C and an isolated D.
	s.g = core.Build(vtx("A", "B", "C", "D"), []core.Edge[span]{
		{From: "A", To: "B", Attr: span{1}},
		{From: "B", To: "C", Attr: span{2}},
		{From: "C", To: "B", Attr: span{5}},
	})
}

func (s *BuildSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(4, s.g.Len())
	require.Equal(3, s.g.EdgeCount())
	require.Empty(s.g.Anomalies())
}

func (s *BuildSuite) TestEdgesInsertedBothWays() {
	require := require.New(s.T())
	require.True(s.g.HasEdge("A", "B"))
	require.True(s.g.HasEdge("B", "A"), "undirected edge must be mirrored")
	require.False(s.g.HasEdge("A", "C"))
	require.False(s.g.HasEdge("A", "Z"))
}

func (s *BuildSuite) TestParallelEdgesKept() {
	require := require.New(s.T())
	nbs, err := s.g.Neighbors("B")
	require.NoError(err)
	require.Equal([]string{"A", "C", "C"}, nbs, "parallel edges must not be deduplicated")

	ib, _ := s.g.Index("B")
	arcs := s.g.Arcs(ib)
	require.Len(arcs, 3)
	require.Equal(2.0, s.g.Edge(arcs[1].Edge).Attr.km)
	require.Equal(5.0, s.g.Edge(arcs[2].Edge).Attr.km)
}

func (s *BuildSuite) TestIsolatedVertexRepresentable() {
	require := require.New(s.T())
	require.True(s.g.Has("D"))
	nbs, err := s.g.Neighbors("D")
	require.NoError(err)
	require.Empty(nbs)
	id, ok := s.g.Index("D")
	require.True(ok)
	require.Empty(s.g.Arcs(id))
}

func (s *BuildSuite) TestVertexLookup() {
	require := require.New(s.T())
	v, err := s.g.Vertex("C")
	require.NoError(err)
	require.Equal("attr-C", v.Attr)

	_, err = s.g.Vertex("")
	require.ErrorIs(err, core.ErrEmptyVertexID)
	_, err = s.g.Vertex("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors("Z")
	require.ErrorIs(err, core.ErrVertexNotFound)

	i, ok := s.g.Index("Z")
	require.False(ok)
	require.Equal(-1, i)
}

func (s *BuildSuite) TestArenaOrderFollowsTable() {
	require := require.New(s.T())
	for i, id := range []string{"A", "B", "C", "D"} {
		require.Equal(id, s.g.VertexAt(i).ID)
	}
	vs := s.g.Vertices()
	vs[0].ID = "mutated"
	require.Equal("A", s.g.VertexAt(0).ID, "Vertices must return a copy")
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}

func TestBuild_MalformedEdgesSkipped(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)

	g := core.Build(vtx("A", "B"), []core.Edge[span]{
		{From: "A", To: "B", Attr: span{1}},
		{From: "A", To: "GHOST", Attr: span{1}},
		{From: "", To: "B", Attr: span{1}},
	}, core.WithLogger(log))

	require.Equal(t, 1, g.EdgeCount())
	anomalies := g.Anomalies()
	require.Len(t, anomalies, 2)
	for _, err := range anomalies {
		require.True(t, errors.Is(err, core.ErrMalformedEdge), "got %v", err)
	}
	require.Contains(t, buf.String(), "GHOST")
	require.Contains(t, buf.String(), "level=warning")
}

func TestBuild_DuplicateAndEmptyVertices(t *testing.T) {
	g := core.Build([]core.Vertex[string]{
		{ID: "A", Attr: "first"},
		{ID: "", Attr: "blank"},
		{ID: "A", Attr: "second"},
	}, []core.Edge[span]{})

	require.Equal(t, 1, g.Len())
	v, err := g.Vertex("A")
	require.NoError(t, err)
	require.Equal(t, "first", v.Attr, "first occurrence wins")

	anomalies := g.Anomalies()
	require.Len(t, anomalies, 2)
	require.ErrorIs(t, anomalies[0], core.ErrEmptyVertexID)
	require.ErrorIs(t, anomalies[1], core.ErrDuplicateVertex)
}

func TestBuild_SelfLoopInsertedOnce(t *testing.T) {
	g := core.Build(vtx("A"), []core.Edge[span]{{From: "A", To: "A"}})
	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, nbs)
}

func TestBuild_InputNotRetained(t *testing.T) {
	vs := vtx("A", "B")
	es := []core.Edge[span]{{From: "A", To: "B", Attr: span{3}}}
	g := core.Build(vs, es)

	vs[0].ID = "X"
	es[0].Attr.km = 99
	require.True(t, g.Has("A"))
	require.Equal(t, 3.0, g.Edge(0).Attr.km)
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { core.WithLogger(nil) })
}
