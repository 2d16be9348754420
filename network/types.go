package network

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/dijkstra"
)

// Sentinel errors for network routing.
var (
	// ErrNoRoute indicates that no route joins the two stations. Returned
	// errors wrap both ErrNoRoute and dijkstra.ErrNoPath.
	ErrNoRoute = errors.New("network: no route")

	// ErrUnknownCriterion indicates an optimisation criterion other than distance or time.
	ErrUnknownCriterion = errors.New("network: unknown criterion")

	// ErrBadTariff indicates a tariff that is incomplete or not monotonic.
	ErrBadTariff = errors.New("network: invalid tariff")

	// ErrBadSpan indicates a span with a negative or NaN distance or time.
	ErrBadSpan = errors.New("network: invalid span")
)

var validate = validator.New()

// Line identifies a metro line ("Red", "Blue", ...).
type Line string

// Station is the vertex payload of the metro network.
type Station struct {
	Name        string
	Line        Line
	Interchange bool
}

// Span is the edge payload: distance in kilometres and travel time in minutes.
type Span struct {
	Distance float64
	Time     float64
}

// Criterion selects the weight minimised by Plan.
type Criterion string

const (
	// ByDistance minimises total kilometres.
	ByDistance Criterion = "distance"
	// ByTime minimises total minutes.
	ByTime Criterion = "time"
)

// ParseCriterion maps "distance" / "time" to a Criterion.
func ParseCriterion(s string) (Criterion, error) {
	switch c := Criterion(s); c {
	case ByDistance, ByTime:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// weight returns the solver weight function for c.
func (c Criterion) weight() (dijkstra.WeightFunc[Span], error) {
	switch c {
	case ByDistance:
		return func(s Span) float64 { return s.Distance }, nil
	case ByTime:
		return func(s Span) float64 { return s.Time }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, string(c))
	}
}

// Leg is a maximal run of the itinerary ridden on one line.
type Leg struct {
	Line  Line   `json:"line" yaml:"line"`
	From  string `json:"from" yaml:"from"`
	To    string `json:"to" yaml:"to"`
	Stops int    `json:"stops" yaml:"stops"`
}

// Itinerary is the rider-facing result of Plan.
type Itinerary struct {
	StationIDs  []string  `json:"station_ids" yaml:"station_ids"`
	Stations    []string  `json:"stations" yaml:"stations"`
	Distance    float64   `json:"distance_km" yaml:"distance_km"`
	Time        float64   `json:"time_min" yaml:"time_min"`
	Transfers   int       `json:"transfers" yaml:"transfers"`
	Fare        int64     `json:"fare" yaml:"fare"`
	OptimizedBy Criterion `json:"optimized_by" yaml:"optimized_by"`
	Legs        []Leg     `json:"legs" yaml:"legs"`
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for anomalies and query tracing.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("network: WithLogger(nil)")
	}

	return func(r *Router) { r.log = l }
}

// WithConcurrency bounds the number of queries PlanAll runs at once.
// Values below 1 panic.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("network: WithConcurrency must be at least 1")
	}

	return func(r *Router) { r.workers = n }
}

func defaultRouter() *Router {
	return &Router{log: core.DiscardLogger(), workers: runtime.GOMAXPROCS(0)}
}
