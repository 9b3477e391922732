package scenario_test

import (
	"log/slog"
	"math/rand/v2"
	"testing"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
	"github.com/couchcryptid/crisis-coordination-service/internal/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockCatalog struct {
	districts map[string][]string
}

func (m *mockCatalog) Districts(region string) []string {
	return m.districts[region]
}

type mockCoords struct {
	coords map[string]domain.Geo
}

func (m *mockCoords) Lookup(district string) (domain.Geo, bool) {
	geo, ok := m.coords[district]
	return geo, ok
}

// scriptedRand replays fixed float and int sequences so tests can pin
// the generated record exactly.
type scriptedRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[s.fi]
	s.fi++
	return v
}

func (s *scriptedRand) IntN(_ int) int {
	v := s.ints[s.ii]
	s.ii++
	return v
}

// --- tests ---

func TestGenerate_DelhiReferenceScenario(t *testing.T) {
	// Draw order: severity, disruption, road access, population.
	// severity 0.50; disruption 0.7+(2/3)*0.3 = 0.90; road draw 0.1 -> Blocked;
	// population 5000+7000 = 12000.
	rnd := &scriptedRand{
		floats: []float64{0.50, 2.0 / 3.0, 0.1},
		ints:   []int{7000},
	}
	catalog := &mockCatalog{districts: map[string][]string{"Delhi": {"New Delhi"}}}
	coords := &mockCoords{coords: map[string]domain.Geo{"New Delhi": {Lat: 28.61, Lon: 77.21}}}

	g := scenario.New(catalog, coords, rnd, slog.Default())
	records := g.Generate("Delhi")

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "New Delhi", rec.District)
	assert.InDelta(t, 0.50, rec.WeatherSeverity, 1e-9)
	assert.InDelta(t, 0.90, rec.DisruptionIndex, 1e-9)
	assert.Equal(t, 9, rec.FloodIndex)
	assert.Equal(t, domain.RoadBlocked, rec.RoadAccess)
	assert.Equal(t, 12000, rec.Population)

	// round(0.4*0.90 + 0.2*0.9 + 0.2*0.50 + 0.2, 2) = 0.84 -> Immediate.
	assert.InDelta(t, 0.84, rec.UrgencyScore, 1e-9)
	assert.Equal(t, domain.TierImmediate, rec.Recommendation)

	require.NotNil(t, rec.Geo)
	assert.InDelta(t, 28.61, rec.Geo.Lat, 1e-9)
}

func TestGenerate_RoadAccessWeightBoundaries(t *testing.T) {
	tests := []struct {
		draw     float64
		expected domain.RoadAccess
	}{
		{0.0, domain.RoadBlocked},
		{0.39, domain.RoadBlocked},
		{0.41, domain.RoadLow},
		{0.59, domain.RoadLow},
		{0.61, domain.RoadMedium},
		{0.81, domain.RoadHigh},
		{0.99, domain.RoadHigh},
	}

	catalog := &mockCatalog{districts: map[string][]string{"Delhi": {"New Delhi"}}}
	coords := &mockCoords{coords: map[string]domain.Geo{}}

	for _, tt := range tests {
		rnd := &scriptedRand{floats: []float64{0.5, 0.5, tt.draw}, ints: []int{0}}
		g := scenario.New(catalog, coords, rnd, slog.Default())

		records := g.Generate("Delhi")
		require.Len(t, records, 1)
		assert.Equal(t, tt.expected, records[0].RoadAccess, "draw %.2f", tt.draw)
	}
}

func TestGenerate_MissingCoordinatesIsDegraded(t *testing.T) {
	catalog := &mockCatalog{districts: map[string][]string{"Telangana": {"Hyderabad", "Adilabad"}}}
	coords := &mockCoords{coords: map[string]domain.Geo{"Hyderabad": {Lat: 17.39, Lon: 78.49}}}

	g := scenario.New(catalog, coords, rand.New(rand.NewPCG(1, 2)), slog.Default())
	records := g.Generate("Telangana")

	require.Len(t, records, 2)
	assert.NotNil(t, records[0].Geo)
	assert.Nil(t, records[1].Geo, "record without coordinates is still produced")
}

func TestGenerate_UnknownRegionIsEmpty(t *testing.T) {
	g := scenario.New(
		&mockCatalog{districts: map[string][]string{}},
		&mockCoords{coords: map[string]domain.Geo{}},
		rand.New(rand.NewPCG(1, 2)),
		slog.Default(),
	)

	records := g.Generate("Narnia")
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestGenerate_Invariants(t *testing.T) {
	districts := make([]string, 40)
	names := []string{"A", "B", "C", "D"}
	for i := range districts {
		districts[i] = names[i%len(names)] + string(rune('a'+i/len(names)))
	}

	catalog := &mockCatalog{districts: map[string][]string{"Telangana": districts}}
	coords := &mockCoords{coords: map[string]domain.Geo{}}
	g := scenario.New(catalog, coords, rand.New(rand.NewPCG(42, 0)), slog.Default())

	records := g.Generate("Telangana")
	require.Len(t, records, 40)

	for _, rec := range records {
		assert.GreaterOrEqual(t, rec.UrgencyScore, 0.0)
		assert.LessOrEqual(t, rec.UrgencyScore, 1.0)
		assert.GreaterOrEqual(t, rec.FloodIndex, 0)
		assert.LessOrEqual(t, rec.FloodIndex, 10)
		assert.GreaterOrEqual(t, rec.DisruptionIndex, 0.7)
		assert.LessOrEqual(t, rec.DisruptionIndex, 1.0)
		assert.GreaterOrEqual(t, rec.WeatherSeverity, 0.0)
		assert.LessOrEqual(t, rec.WeatherSeverity, 1.0)
		assert.GreaterOrEqual(t, rec.Population, 5000)
		assert.LessOrEqual(t, rec.Population, 20000)
		assert.Equal(t, domain.TierFor(rec.UrgencyScore), rec.Recommendation)
		assert.Contains(t, []domain.RoadAccess{
			domain.RoadBlocked, domain.RoadLow, domain.RoadMedium, domain.RoadHigh,
		}, rec.RoadAccess)
	}
}
