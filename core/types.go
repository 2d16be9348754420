package core

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex or edge endpoint has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates the vertex table lists the same ID twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex ID")

	// ErrMalformedEdge indicates an edge endpoint that does not resolve to a known vertex.
	ErrMalformedEdge = errors.New("core: edge references unknown vertex")
)

// Vertex is a node of the graph together with its domain attributes.
//
// ID uniquely identifies the vertex within its Graph.
// Attr is immutable reference data (a station, a facility point, ...).
type Vertex[V any] struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Attr carries the domain attributes of the vertex.
	Attr V
}

// Edge is an unordered connection between two vertices.
//
// From and To are interchangeable: traversal cost is identical both ways.
// Attr is the weight bundle (distance, time, ...) read by the solver
// through a weight function.
type Edge[E any] struct {
	// From is one endpoint vertex ID.
	From string

	// To is the other endpoint vertex ID.
	To string

	// Attr carries the weights of the edge.
	Attr E
}

// Arc is one direction of an accepted edge as seen from a vertex.
type Arc struct {
	// To is the arena index of the neighbouring vertex.
	To int

	// Edge is the index of the edge in Graph.Edge.
	Edge int
}

// Option configures Build.
type Option func(o *options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger routes anomaly reports to l. A nil logger panics, since it
// would silently hide data-quality problems.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}

// Graph is the immutable adjacency structure shared by all queries.
//
// vertices and adj are parallel slices indexed by arena position.
// edges holds only the accepted edges; Arc.Edge indexes into it.
type Graph[V, E any] struct {
	vertices  []Vertex[V]
	index     map[string]int
	edges     []Edge[E]
	adj       [][]Arc
	anomalies []error
}
