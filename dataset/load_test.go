package dataset_test

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transitpath/dataset"
	"github.com/katalvlaran/transitpath/facility"
	"github.com/katalvlaran/transitpath/network"
)

const miniNetwork = `
name: Mini
lines:
  - {name: Red}
  - {name: Blue}
stations:
  - {id: A, name: Alpha, line: Red}
  - {id: B, name: Bravo, line: Red, interchange: true}
  - {id: C, name: Charlie, line: Blue}
connections:
  - {from: A, to: B, distance_km: 10, time_min: 12}
  - {from: B, to: C, distance_km: 5, time_min: 6}
tariff:
  basis: stations
  base: 10
  per_unit: 5
  max: 60
`

const miniFacility = `
station: B
turns: {straight_within: 30, back_beyond: 150}
points:
  - {id: E, name: Entry, kind: entry, floor: "1", x: 0, y: 0}
  - {id: P, name: Platform, kind: platform, floor: "2", x: 0, y: 10}
passages:
  - {from: E, to: P, distance_m: 20}
`

func TestLoadNetwork(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	nf, err := dataset.LoadNetwork(strings.NewReader(miniNetwork), dataset.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, "Mini", nf.Name)
	assert.Len(t, nf.StationVertices(), 3)
	assert.Equal(t, network.Station{Name: "Bravo", Line: "Red", Interchange: true}, nf.StationVertices()[1].Attr)
	assert.Equal(t, network.Span{Distance: 5, Time: 6}, nf.SpanEdges()[1].Attr)
	assert.Equal(t, "network loaded", hook.LastEntry().Message)

	r, err := nf.Router()
	require.NoError(t, err)
	it, err := r.Plan("A", "C", network.ByDistance)
	require.NoError(t, err)
	assert.InDelta(t, 15.0, it.Distance, 1e-9)
	assert.Equal(t, 1, it.Transfers)
	assert.Equal(t, int64(20), it.Fare)
}

func TestLoadNetwork_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":          "name: [",
		"unknown key":       strings.Replace(miniNetwork, "name: Mini", "name: Mini\ncity: Hyderabad", 1),
		"missing name":      strings.Replace(miniNetwork, "name: Mini", "", 1),
		"station sans line": strings.Replace(miniNetwork, "{id: A, name: Alpha, line: Red}", "{id: A, name: Alpha}", 1),
		"negative distance": strings.Replace(miniNetwork, "distance_km: 10", "distance_km: -10", 1),
		"missing basis":     strings.Replace(miniNetwork, "basis: stations", "", 1),
		"bad slab":          miniNetwork + "  slabs:\n    - {up_to: 0, fare: 10}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.LoadNetwork(strings.NewReader(doc))
			require.ErrorIs(t, err, dataset.ErrInvalid)
		})
	}
}

func TestLoadNetwork_UndeclaredLine(t *testing.T) {
	doc := strings.Replace(miniNetwork, "{id: C, name: Charlie, line: Blue}", "{id: C, name: Charlie, line: Purple}", 1)
	_, err := dataset.LoadNetwork(strings.NewReader(doc))
	require.ErrorIs(t, err, dataset.ErrUnknownLine)
	require.Contains(t, err.Error(), "Purple")
}

// Decoding checks the schema; tariff consistency is left to the router.
func TestLoadNetwork_TariffCheckedByRouter(t *testing.T) {
	doc := strings.Replace(miniNetwork, "max: 60", "max: 5", 1)
	nf, err := dataset.LoadNetwork(strings.NewReader(doc))
	require.NoError(t, err)

	_, err = nf.Router()
	require.ErrorIs(t, err, network.ErrBadTariff)
}

func TestLoadFacility(t *testing.T) {
	ff, err := dataset.LoadFacility(strings.NewReader(miniFacility))
	require.NoError(t, err)
	assert.Equal(t, facility.TurnPolicy{StraightWithin: 30, BackBeyond: 150}, ff.Turns)
	assert.Equal(t, facility.KindPlatform, ff.PointVertices()[1].Attr.Kind)

	r, err := ff.Router()
	require.NoError(t, err)
	assert.Equal(t, facility.DefaultWalkingSpeed, r.WalkingSpeed())

	rt, err := r.Route("E", "P")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Start at Entry",
		"Take stairs/escalator to 2 floor",
		"Go straight ahead for 20m to Platform",
		"You have arrived at Platform",
	}, rt.Directions)
}

func TestFacilityFile_WalkingSpeed(t *testing.T) {
	ff, err := dataset.LoadFacility(strings.NewReader("walking_speed: 10\n" + miniFacility))
	require.NoError(t, err)

	r, err := ff.Router()
	require.NoError(t, err)
	assert.Equal(t, 10.0, r.WalkingSpeed())

	r, err = ff.Router(facility.WithWalkingSpeed(40))
	require.NoError(t, err)
	assert.Equal(t, 40.0, r.WalkingSpeed(), "caller options win over the file")
	assert.Equal(t, ff.Turns, r.Policy())
}

// A file assembled in code skips LoadFacility; Router still refuses speeds
// that WithWalkingSpeed would panic on.
func TestFacilityFile_RouterRejectsBadSpeed(t *testing.T) {
	for _, speed := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), -5} {
		ff, err := dataset.LoadFacility(strings.NewReader(miniFacility))
		require.NoError(t, err)
		ff.WalkingSpeed = speed

		require.NotPanics(t, func() {
			_, err = ff.Router()
		})
		require.ErrorIs(t, err, dataset.ErrInvalid, "speed %v", speed)
	}
}

func TestLoadFacility_Invalid(t *testing.T) {
	cases := map[string]string{
		"bad kind":         strings.Replace(miniFacility, "kind: entry", "kind: door", 1),
		"missing floor":    strings.Replace(miniFacility, `floor: "1", `, "", 1),
		"negative length":  strings.Replace(miniFacility, "distance_m: 20", "distance_m: -20", 1),
		"missing turns":    strings.Replace(miniFacility, "turns: {straight_within: 30, back_beyond: 150}", "", 1),
		"inverted turns":   strings.Replace(miniFacility, "back_beyond: 150", "back_beyond: 20", 1),
		"negative speed":   "walking_speed: -1\n" + miniFacility,
		"infinite speed":   "walking_speed: .inf\n" + miniFacility,
		"NaN speed":        "walking_speed: .nan\n" + miniFacility,
		"unknown key":      "levels: 3\n" + miniFacility,
		"no points at all": "station: X\nturns: {straight_within: 30, back_beyond: 150}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := dataset.LoadFacility(strings.NewReader(doc))
			require.ErrorIs(t, err, dataset.ErrInvalid)
		})
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	netPath := filepath.Join(dir, "net.yaml")
	facPath := filepath.Join(dir, "fac.yaml")
	require.NoError(t, os.WriteFile(netPath, []byte(miniNetwork), 0o600))
	require.NoError(t, os.WriteFile(facPath, []byte(miniFacility), 0o600))

	_, err := dataset.LoadNetworkFile(netPath)
	require.NoError(t, err)
	_, err = dataset.LoadFacilityFile(facPath)
	require.NoError(t, err)

	_, err = dataset.LoadNetworkFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	// Errors name the offending file.
	_, err = dataset.LoadNetworkFile(facPath)
	require.ErrorIs(t, err, dataset.ErrInvalid)
	require.Contains(t, err.Error(), facPath)
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() { dataset.WithLogger(nil) })
}
