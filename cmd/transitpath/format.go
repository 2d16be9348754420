package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

// render writes v as YAML or JSON, or calls text for the human format.
func render(w io.Writer, format string, v any, text func(io.Writer)) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		text(w)
		return nil
	}
}

// journey is one planned (or failed) route query.
type journey struct {
	From      string             `json:"from" yaml:"from"`
	To        string             `json:"to" yaml:"to"`
	Itinerary *network.Itinerary `json:"itinerary,omitempty" yaml:"itinerary,omitempty"`
	Error     string             `json:"error,omitempty" yaml:"error,omitempty"`
}

func writeJourneys(w io.Writer, js []journey) {
	for i, j := range js {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if j.Itinerary == nil {
			fmt.Fprintf(w, "%s -> %s: %s\n", j.From, j.To, j.Error)
			continue
		}
		writeItinerary(w, j.Itinerary)
	}
}

func writeItinerary(w io.Writer, it *network.Itinerary) {
	first, last := it.Stations[0], it.Stations[len(it.Stations)-1]
	fmt.Fprintf(w, "%s -> %s, by %s\n", first, last, it.OptimizedBy)
	fmt.Fprintf(w, "  %s\n", it.Summary())
	fmt.Fprintf(w, "  %.1f km, %.1f min, %d %s, fare %d\n",
		it.Distance, it.Time, it.Transfers, plural(it.Transfers, "transfer"), it.Fare)
	fmt.Fprintf(w, "  stations: %s\n", strings.Join(it.Stations, ", "))
}

func writeRoute(w io.Writer, rt *facility.Route) {
	first, last := rt.Points[0], rt.Points[len(rt.Points)-1]
	fmt.Fprintf(w, "%s -> %s: %g m, about %d min\n", first, last, rt.Distance, rt.WalkingTime)
	for i, step := range rt.Directions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
