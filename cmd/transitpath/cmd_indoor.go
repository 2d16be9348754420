package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/transitpath/dijkstra"
	"github.com/katalvlaran/transitpath/facility"
)

func newIndoorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "indoor FROM TO",
		Short: "Walking directions between two points inside a station",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.facilityRouter()
			if err != nil {
				return err
			}
			rt, err := r.Route(args[0], args[1])
			if err != nil {
				return err
			}

			return a.renderRoute(cmd, rt)
		},
	}
}

func newNearestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nearest FROM KIND",
		Short: "Walk to the closest point of a kind (washroom, exit, lift, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := facility.ParseKind(args[1])
			if err != nil {
				return err
			}
			r, err := a.facilityRouter()
			if err != nil {
				return err
			}

			var opts []dijkstra.Option
			if a.cfg.Within > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(a.cfg.Within))
			}
			rt, err := r.Nearest(args[0], kind, opts...)
			if err != nil {
				return err
			}

			return a.renderRoute(cmd, rt)
		},
	}
	cmd.Flags().Float64("within", 0, "search radius in meters (0: unlimited)")

	return cmd
}

func (a *app) renderRoute(cmd *cobra.Command, rt *facility.Route) error {
	return render(cmd.OutOrStdout(), a.cfg.Format, rt, func(w io.Writer) { writeRoute(w, rt) })
}
