package dataset

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var bundled embed.FS

// Bundled sample files.
const (
	DefaultNetworkFile  = "data/hyderabad_metro.yaml"
	DefaultFacilityFile = "data/ameerpet.yaml"
)

// decode reads strict YAML (unknown keys are errors) and validates struct tags.
func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validate.Struct(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// LoadNetwork decodes and validates a network file.
func LoadNetwork(r io.Reader, opts ...Option) (*NetworkFile, error) {
	o := newOptions(opts)

	var nf NetworkFile
	if err := decode(r, &nf); err != nil {
		return nil, err
	}
	if err := nf.checkLines(); err != nil {
		return nil, err
	}

	o.log.WithFields(logrus.Fields{
		"network":     nf.Name,
		"lines":       len(nf.Lines),
		"stations":    len(nf.Stations),
		"connections": len(nf.Connections),
	}).Debug("network loaded")

	return &nf, nil
}

// LoadNetworkFile opens path and calls LoadNetwork.
func LoadNetworkFile(path string, opts ...Option) (*NetworkFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	nf, err := LoadNetwork(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return nf, nil
}

// DefaultNetwork returns the bundled Hyderabad metro sample.
func DefaultNetwork(opts ...Option) (*NetworkFile, error) {
	b, err := bundled.ReadFile(DefaultNetworkFile)
	if err != nil {
		return nil, err
	}

	return LoadNetwork(bytes.NewReader(b), opts...)
}

// LoadFacility decodes and validates a facility file.
func LoadFacility(r io.Reader, opts ...Option) (*FacilityFile, error) {
	o := newOptions(opts)

	var ff FacilityFile
	if err := decode(r, &ff); err != nil {
		return nil, err
	}
	if err := ff.Turns.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if math.IsInf(ff.WalkingSpeed, 0) {
		return nil, fmt.Errorf("%w: walking_speed %v is not finite", ErrInvalid, ff.WalkingSpeed)
	}

	o.log.WithFields(logrus.Fields{
		"station":  ff.Station,
		"points":   len(ff.Points),
		"passages": len(ff.Passages),
	}).Debug("facility loaded")

	return &ff, nil
}

// LoadFacilityFile opens path and calls LoadFacility.
func LoadFacilityFile(path string, opts ...Option) (*FacilityFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ff, err := LoadFacility(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return ff, nil
}

// DefaultFacility returns the bundled Ameerpet interchange sample.
func DefaultFacility(opts ...Option) (*FacilityFile, error) {
	b, err := bundled.ReadFile(DefaultFacilityFile)
	if err != nil {
		return nil, err
	}

	return LoadFacility(bytes.NewReader(b), opts...)
}
