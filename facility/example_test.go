package facility_test

import (
	"fmt"

	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/facility"
)

// ExampleRouter_Route walks from a station entry up to the platform.
func ExampleRouter_Route() {
	r, err := facility.NewRouter(
		[]core.Vertex[facility.Point]{
			{ID: "E", Attr: facility.Point{Name: "Entry", Kind: facility.KindEntry, Floor: "1", X: 0, Y: 0}},
			{ID: "P", Attr: facility.Point{Name: "Platform", Kind: facility.KindPlatform, Floor: "2", X: 0, Y: 10}},
		},
		[]core.Edge[facility.Passage]{{From: "E", To: "P", Attr: facility.Passage{Distance: 20}}},
		facility.TurnPolicy{StraightWithin: 30, BackBeyond: 150},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	rt, _ := r.Route("E", "P")
	for _, step := range rt.Directions {
		fmt.Println(step)
	}
	fmt.Printf("%gm, about %d min\n", rt.Distance, rt.WalkingTime)
	// Output:
	// Start at Entry
	// Take stairs/escalator to 2 floor
	// Go straight ahead for 20m to Platform
	// You have arrived at Platform
	// 20m, about 1 min
}

// ExampleTurnPolicy_Classify words the angle between two movements.
func ExampleTurnPolicy_Classify() {
	p := facility.TurnPolicy{StraightWithin: 30, BackBeyond: 150}
	north := facility.Vector{Y: 1}

	for _, out := range []facility.Vector{{Y: 1}, {X: -1}, {X: 1}, {Y: -1}} {
		fmt.Println(p.Classify(facility.SignedAngle(north, out)))
	}
	// Output:
	// straight
	// left
	// right
	// back
}
