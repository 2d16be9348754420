// Package transitpath is a route-planning engine for fixed transit networks:
// metro journeys across lines, and walking directions inside a station.
//
// 🚀 What is transitpath?
//
//	A small library plus CLI that brings together:
//		• Graph building: immutable arena graphs from flat vertex/edge tables
//		• Shortest paths: one generic Dijkstra over any weight you extract
//		• Metro itineraries: distance, time, transfers, fare, per-line legs
//		• Station wayfinding: walking time, turn-by-turn directions, nearest facility
//		• Static data: validated YAML datasets, bundled Hyderabad metro sample
//
// ✨ Why choose transitpath?
//
//   - One solver, two domains: network and facility routers share dijkstra
//   - Read-only after build: routers need no locks and serve concurrent callers
//   - Policy is data: fares and turn thresholds come from the dataset, not code
//   - Quiet by default: logrus loggers are opt-in per router
//
// Packages:
//
//	core/            immutable arena Graph[V, E], anomaly reporting, components
//	dijkstra/        generic label-setting solver: ShortestPath, Tree, WithMaxDistance
//	network/         metro Router: Plan, PlanAll, Itinerary, Tariff
//	facility/        indoor Router: Route, Nearest, TurnPolicy
//	dataset/         YAML loaders and bundled sample data
//	cmd/transitpath  CLI: route, indoor, nearest, check
//
// Quick ASCII example (Ameerpet interchange):
//
//	Red:   SR Nagar ── Ameerpet ── Punjagutta
//	                      │
//	Blue:             Begumpet
//
//	SR Nagar → Begumpet is 2 stops with 1 transfer.
//
//	go get github.com/katalvlaran/transitpath
package transitpath
