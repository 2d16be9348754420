package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/network"
)

func newRouteCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route FROM TO [FROM TO ...]",
		Short: "Plan metro journeys between station IDs",
		Long: "Plan one or more metro journeys. Each FROM TO pair is planned independently;\n" +
			"several pairs are planned concurrently.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args)%2 != 0 {
				return fmt.Errorf("expected FROM TO pairs, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoute(cmd, args)
		},
	}
	cmd.Flags().String("by", "distance", "minimise distance|time")
	cmd.Flags().Int("workers", runtime.GOMAXPROCS(0), "journeys planned concurrently")

	return cmd
}

func (a *app) runRoute(cmd *cobra.Command, args []string) error {
	by, err := network.ParseCriterion(a.cfg.By)
	if err != nil {
		return err
	}
	r, err := a.networkRouter()
	if err != nil {
		return err
	}

	qs := make([]network.Query, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		qs = append(qs, network.Query{From: args[i], To: args[i+1], By: by})
	}

	out, err := r.PlanAll(cmd.Context(), qs)
	if err != nil {
		return err
	}

	js := make([]journey, len(out))
	var failed []error
	for i, o := range out {
		js[i] = journey{From: o.Query.From, To: o.Query.To, Itinerary: o.Itinerary}
		if o.Err != nil {
			js[i].Error = o.Err.Error()
			failed = append(failed, o.Err)
		}
	}

	if len(qs) == 1 && len(failed) == 1 {
		return failed[0]
	}
	if err := render(cmd.OutOrStdout(), a.cfg.Format, js, func(w io.Writer) { writeJourneys(w, js) }); err != nil {
		return err
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d of %d journeys could not be planned", len(failed), len(qs))
	}

	return nil
}
