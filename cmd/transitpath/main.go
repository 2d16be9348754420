// Command transitpath plans metro journeys and indoor station walks over
// static YAML datasets.
//
//	transitpath route MYP BGP --by time
//	transitpath route MYP BGP JBS HTC          # several journeys at once
//	transitpath indoor ENA BPF
//	transitpath nearest ENA washroom --within 100
//	transitpath check
//
// Without --network / --facility the bundled Hyderabad metro and Ameerpet
// layout are used. Settings may also come from transitpath.toml or
// TRANSITPATH_* environment variables.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/dataset"
	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("transitpath version %s (commit: %s)", version, commit)
	}
	return fmt.Sprintf("transitpath version %s-dev", version)
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg *Config
	log *logrus.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCmd assembles the command tree. Logs are written to logs.
func newRootCmd(logs io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:     "transitpath",
		Short:   "Metro journey and station wayfinding planner",
		Version: versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, logs)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log

			return nil
		},
		SilenceUsage: true,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String("config", defaultConfigFile, "TOML config file")
	pf.String("network", "", "network YAML file (default: bundled Hyderabad metro)")
	pf.String("facility", "", "facility YAML file (default: bundled Ameerpet layout)")
	pf.String("format", "text", "output format: text|yaml|json")
	pf.String("log-level", "warn", "log level: error|warn|info|debug|trace")
	pf.String("log-format", "text", "log format: text|json")

	root.AddCommand(newRouteCmd(a))
	root.AddCommand(newIndoorCmd(a))
	root.AddCommand(newNearestCmd(a))
	root.AddCommand(newCheckCmd(a))

	return root
}

func (a *app) loadNetwork() (*dataset.NetworkFile, error) {
	opts := []dataset.Option{dataset.WithLogger(a.log)}
	if a.cfg.Network == "" {
		return dataset.DefaultNetwork(opts...)
	}

	return dataset.LoadNetworkFile(a.cfg.Network, opts...)
}

func (a *app) loadFacility() (*dataset.FacilityFile, error) {
	opts := []dataset.Option{dataset.WithLogger(a.log)}
	if a.cfg.Facility == "" {
		return dataset.DefaultFacility(opts...)
	}

	return dataset.LoadFacilityFile(a.cfg.Facility, opts...)
}

func (a *app) networkRouter() (*network.Router, error) {
	nf, err := a.loadNetwork()
	if err != nil {
		return nil, err
	}

	return nf.Router(network.WithLogger(a.log), network.WithConcurrency(a.cfg.Workers))
}

func (a *app) facilityRouter() (*facility.Router, error) {
	ff, err := a.loadFacility()
	if err != nil {
		return nil, err
	}

	return ff.Router(facility.WithLogger(a.log))
}
