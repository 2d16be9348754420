package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultConfigFile = "transitpath.toml"
	envPrefix         = "TRANSITPATH_"
)

// Config holds the CLI settings.
type Config struct {
	Network   string  `koanf:"network"`
	Facility  string  `koanf:"facility"`
	By        string  `koanf:"by" validate:"oneof=distance time"`
	Within    float64 `koanf:"within" validate:"gte=0"`
	Workers   int     `koanf:"workers" validate:"min=1"`
	Format    string  `koanf:"format" validate:"oneof=text yaml json"`
	LogLevel  string  `koanf:"log-level" validate:"oneof=panic fatal error warn warning info debug trace"`
	LogFormat string  `koanf:"log-format" validate:"oneof=text json"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"network":    "",
		"facility":   "",
		"by":         "distance",
		"within":     0.0,
		"workers":    runtime.GOMAXPROCS(0),
		"format":     "text",
		"log-level":  "warn",
		"log-format": "text",
	}
}

// loadConfig layers defaults, the TOML config file, TRANSITPATH_* environment
// variables and flags, in increasing priority.
//
// The config file is --config when given (and must then exist), otherwise
// transitpath.toml in the working directory if present.
func loadConfig(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(mapProvider(defaults()), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// 2. Config file
	path, explicit := defaultConfigFile, false
	if f != nil {
		if fl := f.Lookup("config"); fl != nil && fl.Changed {
			path, explicit = fl.Value.String(), true
		}
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// 3. Environment, e.g. TRANSITPATH_LOG_LEVEL=debug
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	// 4. Flags
	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// newLogger builds the process logger. Logs go to w (stderr in main) so that
// command output stays clean.
func newLogger(cfg *Config, w io.Writer) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log, nil
}

// mapProvider serves a static map as a koanf provider.
type mapProvider map[string]interface{}

func (p mapProvider) Read() (map[string]interface{}, error) { return p, nil }

func (p mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("mapProvider does not support ReadBytes")
}
