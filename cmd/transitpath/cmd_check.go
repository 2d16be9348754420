package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

var errCheckFailed = errors.New("dataset check failed")

// graphReport summarises the data quality of one loaded graph.
type graphReport struct {
	Kind       string     `json:"kind" yaml:"kind"`
	Name       string     `json:"name" yaml:"name"`
	Vertices   int        `json:"vertices" yaml:"vertices"`
	Edges      int        `json:"edges" yaml:"edges"`
	Anomalies  []string   `json:"anomalies,omitempty" yaml:"anomalies,omitempty"`
	Components [][]string `json:"components,omitempty" yaml:"components,omitempty"`
	// CutOff lists the groups a facility falls into over open passages when
	// closures split it further than its layout does. It does not fail the check.
	CutOff     [][]string `json:"cut_off,omitempty" yaml:"cut_off,omitempty"`
}

func (g graphReport) ok() bool { return len(g.Anomalies) == 0 && len(g.Components) <= 1 }

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report malformed rows and disconnected parts of the datasets",
		Long: "Load the network and facility datasets and report skipped rows and\n" +
			"disconnected components. Exits non-zero when any problem is found.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := a.check()
			if err != nil {
				return err
			}
			if err := render(cmd.OutOrStdout(), a.cfg.Format, reports, func(w io.Writer) { writeReports(w, reports) }); err != nil {
				return err
			}
			for _, r := range reports {
				if !r.ok() {
					return errCheckFailed
				}
			}

			return nil
		},
	}
}

func (a *app) check() ([]graphReport, error) {
	nf, err := a.loadNetwork()
	if err != nil {
		return nil, err
	}
	nr, err := nf.Router(network.WithLogger(a.log))
	if err != nil {
		return nil, err
	}
	ff, err := a.loadFacility()
	if err != nil {
		return nil, err
	}
	fr, err := ff.Router(facility.WithLogger(a.log))
	if err != nil {
		return nil, err
	}

	ng, fg := nr.Graph(), fr.Graph()
	reports := []graphReport{
		{Kind: "network", Name: nf.Name, Vertices: ng.Len(), Edges: ng.EdgeCount(), Anomalies: messages(ng.Anomalies()), Components: ng.Components()},
		{Kind: "facility", Name: ff.Station, Vertices: fg.Len(), Edges: fg.EdgeCount(), Anomalies: messages(fg.Anomalies()), Components: fg.Components()},
	}
	if open := fr.Components(); len(open) > len(reports[1].Components) {
		reports[1].CutOff = open
	}
	for i := range reports {
		if len(reports[i].Components) <= 1 {
			reports[i].Components = nil
		}
		a.log.WithFields(logrus.Fields{
			"kind":       reports[i].Kind,
			"name":       reports[i].Name,
			"anomalies":  len(reports[i].Anomalies),
			"components": len(reports[i].Components),
			"cut_off":    len(reports[i].CutOff),
		}).Info("dataset checked")
	}
	a.log.WithFields(logrus.Fields{
		"tariff_basis":  nr.Tariff().Basis,
		"walking_speed": fr.WalkingSpeed(),
		"turns":         fr.Policy(),
	}).Debug("routing policy")

	return reports, nil
}

func messages(errs []error) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}

	return out
}

func writeReports(w io.Writer, reports []graphReport) {
	for _, r := range reports {
		status := "ok"
		if !r.ok() {
			status = "PROBLEMS"
		}
		fmt.Fprintf(w, "%s %s: %d vertices, %d edges, %s\n", r.Kind, r.Name, r.Vertices, r.Edges, status)
		for _, msg := range r.Anomalies {
			fmt.Fprintf(w, "  skipped: %s\n", msg)
		}
		if len(r.Components) > 1 {
			fmt.Fprintf(w, "  %d disconnected components:\n", len(r.Components))
			for _, c := range r.Components {
				fmt.Fprintf(w, "    %v\n", c)
			}
		}
		if len(r.CutOff) > 0 {
			fmt.Fprintf(w, "  closed passages split it into %d parts:\n", len(r.CutOff))
			for _, c := range r.CutOff {
				fmt.Fprintf(w, "    %v\n", c)
			}
		}
	}
}
