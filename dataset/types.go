package dataset

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

// Sentinel errors for dataset loading.
var (
	// ErrInvalid indicates a file that does not decode or fails schema validation.
	ErrInvalid = errors.New("dataset: invalid file")

	// ErrUnknownLine indicates a station assigned to a line the file does not declare.
	ErrUnknownLine = errors.New("dataset: station on undeclared line")
)

var validate = validator.New()

// LineRecord declares one metro line.
type LineRecord struct {
	Name  string `yaml:"name" validate:"required"`
	Color string `yaml:"color"`
}

// StationRecord is one row of the station table.
type StationRecord struct {
	ID          string `yaml:"id" validate:"required"`
	Name        string `yaml:"name" validate:"required"`
	Line        string `yaml:"line" validate:"required"`
	Interchange bool   `yaml:"interchange"`
}

// ConnectionRecord is one undirected span between adjacent stations.
type ConnectionRecord struct {
	From       string  `yaml:"from" validate:"required"`
	To         string  `yaml:"to" validate:"required"`
	DistanceKm float64 `yaml:"distance_km" validate:"gte=0"`
	TimeMin    float64 `yaml:"time_min" validate:"gte=0"`
}

// NetworkFile is the YAML schema of a metro network.
type NetworkFile struct {
	Name        string             `yaml:"name" validate:"required"`
	Lines       []LineRecord       `yaml:"lines" validate:"required,min=1,dive"`
	Stations    []StationRecord    `yaml:"stations" validate:"required,min=1,dive"`
	Connections []ConnectionRecord `yaml:"connections" validate:"dive"`
	Tariff      network.Tariff     `yaml:"tariff"`
}

// PointRecord is one row of the facility point table.
type PointRecord struct {
	ID    string  `yaml:"id" validate:"required"`
	Name  string  `yaml:"name" validate:"required"`
	Kind  string  `yaml:"kind" validate:"required,oneof=entry exit platform washroom ticketing lift escalator stairs concourse other"`
	Floor string  `yaml:"floor" validate:"required"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
}

// PassageRecord is one undirected walkway between two points.
type PassageRecord struct {
	From      string  `yaml:"from" validate:"required"`
	To        string  `yaml:"to" validate:"required"`
	DistanceM float64 `yaml:"distance_m" validate:"gte=0"`
	Closed    bool    `yaml:"closed"`
}

// FacilityFile is the YAML schema of one station's indoor layout.
//
// WalkingSpeed is in meters per minute; zero keeps facility.DefaultWalkingSpeed.
type FacilityFile struct {
	Station      string              `yaml:"station" validate:"required"`
	WalkingSpeed float64             `yaml:"walking_speed" validate:"omitempty,gt=0"`
	Turns        facility.TurnPolicy `yaml:"turns"`
	Points       []PointRecord       `yaml:"points" validate:"required,min=1,dive"`
	Passages     []PassageRecord     `yaml:"passages" validate:"dive"`
}

// Option configures a loader.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used to report loaded files.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dataset: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}

func newOptions(opts []Option) options {
	o := options{log: core.DiscardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
