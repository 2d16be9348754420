package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/transitpath/dataset"
	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

type HyderabadSuite struct {
	suite.Suite
	nf *dataset.NetworkFile
	r  *network.Router
}

func (s *HyderabadSuite) SetupSuite() {
	nf, err := dataset.DefaultNetwork()
	s.Require().NoError(err)
	r, err := nf.Router()
	s.Require().NoError(err)
	s.nf, s.r = nf, r
}

func (s *HyderabadSuite) TestShape() {
	s.Len(s.nf.Lines, 3)
	s.Len(s.nf.Stations, 57, "27 Red + 23 Blue + 10 Green, less 3 shared interchanges")
	s.Empty(s.r.Graph().Anomalies())
	s.Len(s.r.Graph().Components(), 1)
}

func (s *HyderabadSuite) TestMiyapurToBegumpet() {
	it, err := s.r.Plan("MYP", "BGP", network.ByDistance)
	s.Require().NoError(err)
	s.Equal("Miyapur", it.Stations[0])
	s.Equal("Ameerpet", it.Stations[len(it.Stations)-2])
	s.Equal("Begumpet", it.Stations[len(it.Stations)-1])
	s.InDelta(12.9, it.Distance, 1e-9)
	s.Equal(1, it.Transfers)
	s.Equal(int64(40), it.Fare, "12.9 km falls in the 12-15 km band")
	s.Equal([]network.Leg{
		{Line: "Red", From: "Miyapur", To: "Ameerpet", Stops: 10},
		{Line: "Blue", From: "Ameerpet", To: "Begumpet", Stops: 1},
	}, it.Legs)
}

func (s *HyderabadSuite) TestBlueThroughAmeerpet() {
	it, err := s.r.Plan("BGP", "MDN", network.ByTime)
	s.Require().NoError(err)
	s.Equal([]string{"BGP", "AMP", "MDN"}, it.StationIDs)
	s.Zero(it.Transfers)
}

func (s *HyderabadSuite) TestGreenBetweenInterchanges() {
	it, err := s.r.Plan("JBS", "MGB", network.ByDistance)
	s.Require().NoError(err)
	s.Len(it.StationIDs, 10)
	s.Zero(it.Transfers, "Parade Ground and MG Bus Station serve Green too")
	s.InDelta(10.4, it.Distance, 1e-9)
	s.Equal(int64(35), it.Fare)
}

func (s *HyderabadSuite) TestMiyapurToHitecCity() {
	it, err := s.r.Plan("MYP", "HTC", network.ByDistance)
	s.Require().NoError(err)
	s.Equal(1, it.Transfers)
	s.InDelta(20.4, it.Distance, 1e-9)
	s.Equal(int64(50), it.Fare)
}

func (s *HyderabadSuite) TestUnknownStation() {
	_, err := s.r.Plan("MYP", "XYZ", network.ByDistance)
	s.ErrorIs(err, network.ErrNoRoute)
}

func TestHyderabadSuite(t *testing.T) {
	suite.Run(t, new(HyderabadSuite))
}

func TestDefaultFacility_Ameerpet(t *testing.T) {
	ff, err := dataset.DefaultFacility()
	require.NoError(t, err)
	assert.Equal(t, "AMP", ff.Station)

	r, err := ff.Router()
	require.NoError(t, err)
	assert.Equal(t, 75.0, r.WalkingSpeed())
	assert.Empty(t, r.Graph().Anomalies())

	rt, err := r.Route("ENA", "BPF")
	require.NoError(t, err)
	assert.Equal(t, []string{"ENA", "ESA", "CON", "AFC", "ESB", "BPF"}, rt.PointIDs)
	assert.InDelta(t, 89.0, rt.Distance, 1e-9)
	assert.Equal(t, 2, rt.WalkingTime)
	assert.Equal(t, []string{
		"Start at Entry A (Ameerpet Road)",
		"Go straight ahead for 11m to Escalator A",
		"Take stairs/escalator to 1 floor",
		"Turn right and walk 30m to Concourse",
		"Turn left and walk 10m to Fare Gates",
		"Turn right and walk 18m to Escalator to Blue Line",
		"Take stairs/escalator to 3 floor",
		"Turn left and walk 20m to Blue Line Platform",
		"You have arrived at Blue Line Platform",
	}, rt.Directions)

	wc, err := r.Nearest("ENA", facility.KindWashroom)
	require.NoError(t, err)
	assert.Equal(t, []string{"ENA", "ESA", "CON", "WC"}, wc.PointIDs)

	// The mall skywalk is closed, so the nearest way out is Exit B.
	out, err := r.Nearest("CON", facility.KindExit)
	require.NoError(t, err)
	assert.Equal(t, []string{"CON", "LF1", "LFG", "ENB"}, out.PointIDs)
}
