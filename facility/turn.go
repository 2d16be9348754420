package facility

import (
	"fmt"
	"math"
)

// Turn is the direction of a movement relative to the previous one.
type Turn int

// Turns, in clockwise order starting ahead.
const (
	Straight Turn = iota
	Right
	Back
	Left
)

var turnNames = [...]string{"straight", "right", "back", "left"}

func (t Turn) String() string {
	if t < Straight || t > Left {
		return fmt.Sprintf("Turn(%d)", int(t))
	}

	return turnNames[t]
}

// Vector is a planar displacement between two points.
type Vector struct{ X, Y float64 }

// Between returns the displacement from a to b.
func Between(a, b Point) Vector { return Vector{X: b.X - a.X, Y: b.Y - a.Y} }

// SignedAngle returns the angle in degrees from in to out, in (-180, 180].
// Positive is counter-clockwise in Cartesian axes. A zero-length vector has
// no heading and yields 0.
func SignedAngle(in, out Vector) float64 {
	if (in.X == 0 && in.Y == 0) || (out.X == 0 && out.Y == 0) {
		return 0
	}

	cross := in.X*out.Y - in.Y*out.X
	dot := in.X*out.X + in.Y*out.Y
	a := math.Atan2(cross, dot) * 180 / math.Pi
	if a <= -180 {
		a = 180
	}

	return a
}

// TurnPolicy holds the angular thresholds, in degrees, used to word a turn.
//
//	|a| <= StraightWithin  straight
//	|a| >= BackBeyond      back
//	otherwise              left when a > 0, right when a < 0
//
// ScreenAxes flips the sign for coordinates whose y axis points down.
type TurnPolicy struct {
	StraightWithin float64 `yaml:"straight_within" json:"straight_within"`
	BackBeyond     float64 `yaml:"back_beyond" json:"back_beyond"`
	ScreenAxes     bool    `yaml:"screen_axes" json:"screen_axes"`
}

// Validate checks 0 <= StraightWithin < BackBeyond <= 180.
func (p TurnPolicy) Validate() error {
	if !(p.StraightWithin >= 0 && p.StraightWithin < p.BackBeyond && p.BackBeyond <= 180) {
		return fmt.Errorf("%w: straight_within=%v back_beyond=%v", ErrBadPolicy, p.StraightWithin, p.BackBeyond)
	}

	return nil
}

// Classify maps any angle in degrees to exactly one Turn. Angles outside
// (-180, 180] are normalised first; NaN and infinities are straight.
func (p TurnPolicy) Classify(angle float64) Turn {
	a := math.Remainder(angle, 360)
	if math.IsNaN(a) {
		return Straight
	}
	if p.ScreenAxes {
		a = -a
	}

	switch abs := math.Abs(a); {
	case abs <= p.StraightWithin:
		return Straight
	case abs >= p.BackBeyond:
		return Back
	case a > 0:
		return Left
	default:
		return Right
	}
}
