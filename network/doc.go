// Package network plans journeys across a multi-line metro network.
//
// A Router wraps the station graph (core.Graph[Station, Span]) and a Tariff.
// Plan runs the shared dijkstra solver minimising either kilometres
// (ByDistance) or minutes (ByTime) and composes an Itinerary:
//
//   - Stations / StationIDs in travel order.
//   - Distance and Time summed over the spans actually taken.
//   - Transfers: the number of line changes. Interchange stations carry a
//     line tag but serve several lines, so they never cause a transfer by
//     themselves; only a change between the lines of ordinary stations does.
//   - Fare: Tariff applied to the final path (stations travelled, kilometres
//     or minutes, depending on Tariff.Basis).
//   - OptimizedBy: the criterion used.
//   - Legs: per-line segments for rider-facing output (see Itinerary.Summary).
//
// Unreachable destinations, including unknown station IDs, yield ErrNoRoute
// and a nil itinerary; no zero-valued metrics are fabricated.
//
// A Router is immutable and safe for concurrent use; PlanAll fans a batch of
// queries out over a bounded errgroup.
package network
