package dataset

import (
	"fmt"
	"math"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

// checkLines rejects stations whose line is not declared in Lines.
func (nf *NetworkFile) checkLines() error {
	declared := make(map[string]struct{}, len(nf.Lines))
	for _, l := range nf.Lines {
		declared[l.Name] = struct{}{}
	}
	for i, s := range nf.Stations {
		if _, ok := declared[s.Line]; !ok {
			return fmt.Errorf("%w: station %d %q on line %q", ErrUnknownLine, i, s.ID, s.Line)
		}
	}

	return nil
}

// StationVertices converts the station table to graph vertices.
func (nf *NetworkFile) StationVertices() []core.Vertex[network.Station] {
	out := make([]core.Vertex[network.Station], len(nf.Stations))
	for i, s := range nf.Stations {
		out[i] = core.Vertex[network.Station]{ID: s.ID, Attr: network.Station{
			Name:        s.Name,
			Line:        network.Line(s.Line),
			Interchange: s.Interchange,
		}}
	}

	return out
}

// SpanEdges converts the connection table to graph edges.
func (nf *NetworkFile) SpanEdges() []core.Edge[network.Span] {
	out := make([]core.Edge[network.Span], len(nf.Connections))
	for i, c := range nf.Connections {
		out[i] = core.Edge[network.Span]{From: c.From, To: c.To, Attr: network.Span{Distance: c.DistanceKm, Time: c.TimeMin}}
	}

	return out
}

// Router builds a network.Router over the file's stations, spans and tariff.
func (nf *NetworkFile) Router(opts ...network.Option) (*network.Router, error) {
	return network.NewRouter(nf.StationVertices(), nf.SpanEdges(), nf.Tariff, opts...)
}

// PointVertices converts the point table to graph vertices.
func (ff *FacilityFile) PointVertices() []core.Vertex[facility.Point] {
	out := make([]core.Vertex[facility.Point], len(ff.Points))
	for i, p := range ff.Points {
		out[i] = core.Vertex[facility.Point]{ID: p.ID, Attr: facility.Point{
			Name:  p.Name,
			Kind:  facility.Kind(p.Kind),
			Floor: p.Floor,
			X:     p.X,
			Y:     p.Y,
		}}
	}

	return out
}

// PassageEdges converts the passage table to graph edges.
func (ff *FacilityFile) PassageEdges() []core.Edge[facility.Passage] {
	out := make([]core.Edge[facility.Passage], len(ff.Passages))
	for i, p := range ff.Passages {
		out[i] = core.Edge[facility.Passage]{From: p.From, To: p.To, Attr: facility.Passage{Distance: p.DistanceM, Closed: p.Closed}}
	}

	return out
}

// Router builds a facility.Router over the file's layout. The file's walking
// speed, when set, is applied before opts, so callers can still override it.
// A negative, NaN or infinite speed is rejected with ErrInvalid.
func (ff *FacilityFile) Router(opts ...facility.Option) (*facility.Router, error) {
	if ff.WalkingSpeed < 0 || math.IsNaN(ff.WalkingSpeed) || math.IsInf(ff.WalkingSpeed, 0) {
		return nil, fmt.Errorf("%w: walking_speed %v", ErrInvalid, ff.WalkingSpeed)
	}
	if ff.WalkingSpeed > 0 {
		opts = append([]facility.Option{facility.WithWalkingSpeed(ff.WalkingSpeed)}, opts...)
	}

	return facility.NewRouter(ff.PointVertices(), ff.PassageEdges(), ff.Turns, opts...)
}
