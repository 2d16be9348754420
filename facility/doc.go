// Package facility routes pedestrians inside a single station: entries,
// concourses, ticketing, washrooms, stairs, escalators and platforms.
//
// A Router wraps the facility graph (core.Graph[Point, Passage]) and a
// TurnPolicy. Route runs the shared dijkstra solver minimising meters walked
// and returns a Route with the distance, the walking time in whole minutes
// (ceil(distance / walking speed)) and step-by-step directions:
//
//	Start at Entry
//	Take stairs/escalator to 2 floor
//	Go straight ahead for 20m to Platform
//	You have arrived at Platform
//
// A floor change is announced before the movement that performs it. Turns
// are classified from the signed angle between consecutive movements using
// the caller's TurnPolicy thresholds; the first movement is always straight.
//
// Closed passages stay in the graph with an impassable weight. Nearest finds
// the closest point of a Kind, such as the nearest washroom or exit.
package facility
