package network

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/transitpath/dijkstra"
)

// compose derives the itinerary metrics from a solved path. Distance and
// time are summed over the exact edges the solver chose, whichever criterion
// was minimised.
func (r *Router) compose(p dijkstra.Path, by Criterion) *Itinerary {
	n := len(p.Vertices)
	stations := make([]Station, n)
	it := &Itinerary{
		StationIDs:  append([]string(nil), p.Vertices...),
		Stations:    make([]string, n),
		OptimizedBy: by,
	}

	for i, id := range p.Vertices {
		idx, _ := r.g.Index(id)
		stations[i] = r.g.VertexAt(idx).Attr
		it.Stations[i] = stations[i].Name
	}
	for _, eid := range p.Edges {
		s := r.g.Edge(eid).Attr
		it.Distance += s.Distance
		it.Time += s.Time
	}

	it.Transfers = transfers(stations)
	it.Legs = legs(stations)
	it.Fare = r.tariff.Fare(r.tariff.Units(p.Hops(), it.Distance, it.Time))

	return it
}

// run is a maximal sequence of non-interchange stations sharing a line,
// possibly interleaved with interchange stations.
type run struct {
	line        Line
	first, last int
}

// lineRuns groups the path by line. Interchange stations belong to more than
// one line, so their own tag is ignored: only a change between the lines of
// ordinary stations is a transfer.
func lineRuns(st []Station) []run {
	var runs []run
	for i, s := range st {
		if s.Interchange {
			continue
		}
		if k := len(runs) - 1; k >= 0 && runs[k].line == s.Line {
			runs[k].last = i
			continue
		}
		runs = append(runs, run{line: s.Line, first: i, last: i})
	}

	return runs
}

// transfers counts changes of line tag between consecutive ordinary
// stations on the path. Interchanges are skipped, so a path that only touches
// one (or starts or ends there) changes line only if the ordinary stations
// on either side disagree.
func transfers(st []Station) int {
	if runs := lineRuns(st); len(runs) > 1 {
		return len(runs) - 1
	}

	return 0
}

// legs splits the path into per-line segments. A segment ends at the first
// interchange station after its last ordinary station, or at that station
// itself when two lines meet without a flagged interchange; the next segment
// starts where the previous one ended. Zero-stop segments are dropped.
func legs(st []Station) []Leg {
	n := len(st)
	if n < 2 {
		return nil
	}

	runs := lineRuns(st)
	if len(runs) == 0 {
		// Interchange to interchange: ride whatever line the origin is tagged with.
		return []Leg{{Line: st[0].Line, From: st[0].Name, To: st[n-1].Name, Stops: n - 1}}
	}

	out := make([]Leg, 0, len(runs))
	start := 0
	for k, ru := range runs {
		end := n - 1
		if k+1 < len(runs) {
			end = ru.last
			if runs[k+1].first-1 > ru.last {
				end = ru.last + 1
			}
		}
		if end > start {
			out = append(out, Leg{Line: ru.line, From: st[start].Name, To: st[end].Name, Stops: end - start})
		}
		start = end
	}

	return out
}

// Summary renders the legs as one rider-facing sentence.
func (it *Itinerary) Summary() string {
	if len(it.Legs) == 0 {
		if len(it.Stations) == 0 {
			return ""
		}
		return "You are already at " + it.Stations[0]
	}

	var b strings.Builder
	for i, l := range it.Legs {
		if i > 0 {
			b.WriteString(", then change to ")
		}
		fmt.Fprintf(&b, "%s line from %s to %s (%d %s)", l.Line, l.From, l.To, l.Stops, plural(l.Stops, "stop"))
	}

	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
