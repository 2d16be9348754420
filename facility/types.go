package facility

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transitpath/core"
)

// Sentinel errors for indoor routing.
var (
	// ErrNoRoute indicates that no open passage sequence joins the two points.
	// Returned errors wrap both ErrNoRoute and dijkstra.ErrNoPath.
	ErrNoRoute = errors.New("facility: no route")

	// ErrBadPolicy indicates turn thresholds outside 0 <= StraightWithin < BackBeyond <= 180.
	ErrBadPolicy = errors.New("facility: invalid turn policy")

	// ErrBadPassage indicates a passage with a negative or NaN distance.
	ErrBadPassage = errors.New("facility: invalid passage")

	// ErrUnknownKind indicates a point kind outside the Kind constants.
	ErrUnknownKind = errors.New("facility: unknown point kind")
)

// DefaultWalkingSpeed is 4.8 km/h expressed in meters per minute.
const DefaultWalkingSpeed = 80.0

// Kind classifies a point inside a station.
type Kind string

// Point kinds.
const (
	KindEntry     Kind = "entry"
	KindExit      Kind = "exit"
	KindPlatform  Kind = "platform"
	KindWashroom  Kind = "washroom"
	KindTicketing Kind = "ticketing"
	KindLift      Kind = "lift"
	KindEscalator Kind = "escalator"
	KindStairs    Kind = "stairs"
	KindConcourse Kind = "concourse"
	KindOther     Kind = "other"
)

var kinds = []Kind{
	KindEntry, KindExit, KindPlatform, KindWashroom, KindTicketing,
	KindLift, KindEscalator, KindStairs, KindConcourse, KindOther,
}

// ParseKind maps a lower-case kind name to its Kind.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Point is the vertex payload of a facility graph: a named place on a floor
// with planar coordinates.
type Point struct {
	Name  string
	Kind  Kind
	Floor string
	X, Y  float64
}

// Passage is the edge payload: walking distance in meters. Closed passages
// stay in the graph but are never walked.
type Passage struct {
	Distance float64
	Closed   bool
}

// walk is the solver weight: closed passages weigh +Inf.
func walk(p Passage) float64 {
	if p.Closed {
		return math.Inf(1)
	}

	return p.Distance
}

// Route is the rider-facing result of an indoor query.
type Route struct {
	PointIDs    []string `json:"point_ids" yaml:"point_ids"`
	Points      []string `json:"points" yaml:"points"`
	Distance    float64  `json:"distance_m" yaml:"distance_m"`
	WalkingTime int      `json:"walking_time_min" yaml:"walking_time_min"`
	Directions  []string `json:"directions" yaml:"directions"`
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for anomalies and query tracing.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("facility: WithLogger(nil)")
	}

	return func(r *Router) { r.log = l }
}

// WithWalkingSpeed overrides DefaultWalkingSpeed (meters per minute).
// Non-positive or non-finite speeds panic.
func WithWalkingSpeed(metersPerMinute float64) Option {
	if !(metersPerMinute > 0) || math.IsInf(metersPerMinute, 1) {
		panic("facility: WithWalkingSpeed must be positive and finite")
	}

	return func(r *Router) { r.speed = metersPerMinute }
}

func defaultRouter() *Router {
	return &Router{log: core.DiscardLogger(), speed: DefaultWalkingSpeed}
}
