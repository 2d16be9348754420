// Package dataset loads the static reference data behind the routers: metro
// networks (lines, stations, connections, tariff) and station facility
// layouts (points, passages, turn thresholds, walking speed).
//
// Files are YAML, decoded strictly (unknown keys are errors) and validated
// with struct tags. Network files must also assign every station to a
// declared line. Loaded files convert to core vertex/edge tables and build
// ready routers:
//
//	nf, err := dataset.LoadNetworkFile("metro.yaml")
//	...
//	r, err := nf.Router(network.WithLogger(log))
//
// A three-line Hyderabad metro and the Ameerpet interchange layout are
// bundled; DefaultNetwork and DefaultFacility return them.
package dataset
