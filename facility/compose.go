package facility

import (
	"math"
	"strconv"

	"github.com/katalvlaran/transitpath/dijkstra"
)

// compose derives distance, walking time and directions from a solved path.
func (r *Router) compose(p dijkstra.Path) *Route {
	n := len(p.Vertices)
	pts := make([]Point, n)
	rt := &Route{
		PointIDs: append([]string(nil), p.Vertices...),
		Points:   make([]string, n),
	}
	for i, id := range p.Vertices {
		idx, _ := r.g.Index(id)
		pts[i] = r.g.VertexAt(idx).Attr
		rt.Points[i] = pts[i].Name
	}

	steps := make([]float64, len(p.Edges))
	for i, eid := range p.Edges {
		steps[i] = r.g.Edge(eid).Attr.Distance
		rt.Distance += steps[i]
	}

	rt.WalkingTime = walkingMinutes(rt.Distance, r.speed)
	rt.Directions = directions(pts, steps, r.policy)

	return rt
}

// walkingMinutes rounds distance/speed up to whole minutes, ignoring float noise.
func walkingMinutes(distance, speed float64) int {
	m := math.Round(distance/speed*1e6) / 1e6

	return int(math.Ceil(m))
}

// directions words a walk through pts, where steps[i] is the length of the
// passage from pts[i] to pts[i+1].
//
// The first movement has no incoming heading and is always straight. A
// movement with no planar displacement (a lift ride, say) keeps the previous
// heading.
func directions(pts []Point, steps []float64, policy TurnPolicy) []string {
	if len(pts) == 0 {
		return nil
	}

	out := make([]string, 0, 2*len(pts)+1)
	out = append(out, "Start at "+pts[0].Name)

	var heading Vector
	for i, d := range steps {
		a, b := pts[i], pts[i+1]
		if a.Floor != b.Floor {
			out = append(out, "Take stairs/escalator to "+b.Floor+" floor")
		}

		v := Between(a, b)
		turn := Straight
		if i > 0 {
			turn = policy.Classify(SignedAngle(heading, v))
		}
		out = append(out, movement(turn, d, b.Name))

		if v.X != 0 || v.Y != 0 {
			heading = v
		}
	}

	return append(out, "You have arrived at "+pts[len(pts)-1].Name)
}

func movement(t Turn, meters float64, to string) string {
	d := strconv.FormatFloat(meters, 'f', -1, 64) + "m to " + to
	switch t {
	case Right:
		return "Turn right and walk " + d
	case Left:
		return "Turn left and walk " + d
	case Back:
		return "Turn back and walk " + d
	default:
		return "Go straight ahead for " + d
	}
}
