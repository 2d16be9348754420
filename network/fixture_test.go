package network_test

import (
	"github.com/katalvlaran/transitpath/core"
	"github.com/katalvlaran/transitpath/network"
)

// A slice of the Hyderabad metro around the Ameerpet interchange.
//
//	Red:  MIY - KPH - SRN - AMP - PJG
//	Blue: BEG - AMP - MDN
//
// AMP is an interchange tagged Red. ISO is an isolated station.
func fixtureStations() []core.Vertex[network.Station] {
	red, blue := network.Line("Red"), network.Line("Blue")

	return []core.Vertex[network.Station]{
		{ID: "MIY", Attr: network.Station{Name: "Miyapur", Line: red}},
		{ID: "KPH", Attr: network.Station{Name: "KPHB Colony", Line: red}},
		{ID: "SRN", Attr: network.Station{Name: "SR Nagar", Line: red}},
		{ID: "AMP", Attr: network.Station{Name: "Ameerpet", Line: red, Interchange: true}},
		{ID: "PJG", Attr: network.Station{Name: "Punjagutta", Line: red}},
		{ID: "BEG", Attr: network.Station{Name: "Begumpet", Line: blue}},
		{ID: "MDN", Attr: network.Station{Name: "Madhura Nagar", Line: blue}},
		{ID: "ISO", Attr: network.Station{Name: "Isolated", Line: blue}},
	}
}

func fixtureSpans() []core.Edge[network.Span] {
	return []core.Edge[network.Span]{
		{From: "MIY", To: "KPH", Attr: network.Span{Distance: 3.5, Time: 6}},
		{From: "KPH", To: "SRN", Attr: network.Span{Distance: 6, Time: 10}},
		{From: "SRN", To: "AMP", Attr: network.Span{Distance: 1, Time: 2}},
		{From: "AMP", To: "PJG", Attr: network.Span{Distance: 1.5, Time: 2}},
		{From: "BEG", To: "AMP", Attr: network.Span{Distance: 1.5, Time: 3}},
		{From: "AMP", To: "MDN", Attr: network.Span{Distance: 1, Time: 2}},
	}
}

// perStation charges 10 plus 5 per station travelled, capped at 60.
func perStation() network.Tariff {
	return network.Tariff{Basis: network.BasisStations, Base: 10, PerUnit: 5, Max: 60}
}

func newFixtureRouter(opts ...network.Option) *network.Router {
	r, err := network.NewRouter(fixtureStations(), fixtureSpans(), perStation(), opts...)
	if err != nil {
		panic(err)
	}

	return r
}
