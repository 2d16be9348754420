package network

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
)

// Router plans journeys over one metro network. It is immutable after
// NewRouter returns and safe for concurrent use.
type Router struct {
	g       *core.Graph[Station, Span]
	tariff  Tariff
	log     logrus.FieldLogger
	workers int
}

// NewRouter builds the station graph and validates the tariff.
//
// Spans naming unknown stations are skipped and logged (see core.Build)
// before weights are checked; a kept span with a negative or NaN weight is
// rejected with ErrBadSpan, and an invalid tariff with ErrBadTariff.
func NewRouter(stations []core.Vertex[Station], spans []core.Edge[Span], tariff Tariff, opts ...Option) (*Router, error) {
	r := defaultRouter()
	for _, opt := range opts {
		opt(r)
	}

	if err := tariff.Validate(); err != nil {
		return nil, err
	}

	g := core.Build(stations, spans, core.WithLogger(r.log))
	for i := 0; i < g.EdgeCount(); i++ {
		if s := g.Edge(i); !validWeight(s.Attr.Distance) || !validWeight(s.Attr.Time) {
			return nil, fmt.Errorf("%w: span %s-%s distance=%v time=%v",
				ErrBadSpan, s.From, s.To, s.Attr.Distance, s.Attr.Time)
		}
	}
	r.g = g
	r.tariff = tariff
	r.log.WithFields(logrus.Fields{
		"stations":  r.g.Len(),
		"spans":     r.g.EdgeCount(),
		"anomalies": len(r.g.Anomalies()),
	}).Debug("network router ready")

	return r, nil
}

func validWeight(w float64) bool { return w >= 0 && !math.IsNaN(w) }

// Graph exposes the underlying station graph (read-only).
func (r *Router) Graph() *core.Graph[Station, Span] { return r.g }

// Tariff returns the tariff applied by Plan.
func (r *Router) Tariff() Tariff { return r.tariff }

// Plan finds the best route from one station to another under criterion by
// and composes the rider-facing itinerary.
//
// Returns ErrNoRoute when the stations are not connected or either ID is
// unknown, ErrUnknownCriterion for an unsupported criterion.
func (r *Router) Plan(from, to string, by Criterion) (*Itinerary, error) {
	weight, err := by.weight()
	if err != nil {
		return nil, err
	}

	p, err := dijkstra.ShortestPath(r.g, from, to, weight)
	if errors.Is(err, dijkstra.ErrNoPath) {
		r.log.WithFields(logrus.Fields{"from": from, "to": to, "criterion": by}).Debug("no route")
		return nil, fmt.Errorf("%w: %w", ErrNoRoute, err)
	}
	if err != nil {
		return nil, err
	}

	it := r.compose(p, by)
	r.log.WithFields(logrus.Fields{
		"from":      from,
		"to":        to,
		"criterion": by,
		"total":     p.Total,
		"transfers": it.Transfers,
	}).Debug("route planned")

	return it, nil
}
