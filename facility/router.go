package facility

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
)

// Router finds walking routes between points of one station. It is immutable
// after NewRouter returns and safe for concurrent use.
type Router struct {
	g      *core.Graph[Point, Passage]
	policy TurnPolicy
	speed  float64 // meters per minute
	log    logrus.FieldLogger
}

// NewRouter builds the facility graph and validates the turn policy.
//
// Passages naming unknown points are skipped and logged (see core.Build)
// before distances are checked; a kept passage with a negative or NaN
// distance is rejected with ErrBadPassage, and an invalid policy with
// ErrBadPolicy.
func NewRouter(points []core.Vertex[Point], passages []core.Edge[Passage], policy TurnPolicy, opts ...Option) (*Router, error) {
	r := defaultRouter()
	for _, opt := range opts {
		opt(r)
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}

	g := core.Build(points, passages, core.WithLogger(r.log))
	for i := 0; i < g.EdgeCount(); i++ {
		if p := g.Edge(i); p.Attr.Distance < 0 || math.IsNaN(p.Attr.Distance) {
			return nil, fmt.Errorf("%w: passage %s-%s distance=%v",
				ErrBadPassage, p.From, p.To, p.Attr.Distance)
		}
	}
	r.g = g
	r.policy = policy
	r.log.WithFields(logrus.Fields{
		"points":    r.g.Len(),
		"passages":  r.g.EdgeCount(),
		"anomalies": len(r.g.Anomalies()),
	}).Debug("facility router ready")

	return r, nil
}

// Graph exposes the underlying facility graph (read-only).
func (r *Router) Graph() *core.Graph[Point, Passage] { return r.g }

// Policy returns the turn policy used for directions.
func (r *Router) Policy() TurnPolicy { return r.policy }

// WalkingSpeed returns the speed, in meters per minute, used for walking time.
func (r *Router) WalkingSpeed() float64 { return r.speed }

// Components groups the points that can reach each other over open passages.
// A point cut off only by closed passages forms its own component.
func (r *Router) Components() [][]string {
	return r.g.ComponentsFunc(func(p Passage) bool { return !p.Closed })
}

// Route finds the shortest open walk between two points and words it as
// step-by-step directions.
//
// Returns ErrNoRoute when the points are not connected by open passages or
// either ID is unknown.
func (r *Router) Route(from, to string) (*Route, error) {
	p, err := dijkstra.ShortestPath(r.g, from, to, walk)
	if errors.Is(err, dijkstra.ErrNoPath) {
		r.log.WithFields(logrus.Fields{"from": from, "to": to}).Debug("no indoor route")
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	if err != nil {
		return nil, err
	}

	rt := r.compose(p)
	r.log.WithFields(logrus.Fields{
		"from":  from,
		"to":    to,
		"total": p.Total,
		"steps": len(rt.Directions),
	}).Debug("indoor route planned")

	return rt, nil
}

// Nearest routes from a point to the closest point of the given kind, for
// example the nearest washroom. Equally close candidates resolve to the one
// declared first. The origin itself qualifies when it has that kind.
//
// Solver options narrow the search; dijkstra.WithMaxDistance bounds it to a
// walking radius in meters. Returns ErrNoRoute when no such point is reachable.
func (r *Router) Nearest(from string, kind Kind, opts ...dijkstra.Option) (*Route, error) {
	labels, err := dijkstra.Tree(r.g, from, walk, opts...)
	if errors.Is(err, dijkstra.ErrNoPath) {
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	if err != nil {
		return nil, err
	}

	best, bestDist := "", math.Inf(1)
	for i := 0; i < r.g.Len(); i++ {
		v := r.g.VertexAt(i)
		if v.Attr.Kind != kind {
			continue
		}
		if d, ok := labels.Distance(v.ID); ok && d < bestDist {
			best, bestDist = v.ID, d
		}
	}
	if best == "" {
		r.log.WithFields(logrus.Fields{"from": from, "kind": kind}).Debug("no reachable point of kind")
		return nil, fmt.Errorf("%w: %w: no %s reachable from %q", ErrNoRoute, dijkstra.ErrNoPath, kind, from)
	}

	p, err := labels.PathTo(best)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}

	return r.compose(p), nil
}
