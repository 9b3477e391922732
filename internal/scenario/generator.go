// Package scenario builds synthetic per-district disaster datasets. No
// real feed backs the dashboard: each generation cycle draws weather
// severity, disruption, road access, and population from a randomness
// source and derives the urgency score and recommendation tier from them.
package scenario

import (
	"log/slog"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
)

// Rand is the source of randomness for dataset generation. It is an
// interface so tests can inject scripted sequences and verify the scoring
// formula exactly; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// IntN returns a value in [0,n).
	IntN(n int) int
}

// DistrictSource lists the districts belonging to a region.
type DistrictSource interface {
	Districts(region string) []string
}

// CoordinateSource resolves a district name to coordinates.
type CoordinateSource interface {
	Lookup(district string) (domain.Geo, bool)
}

// Sampling bounds for the synthetic inputs.
const (
	disruptionMin = 0.7
	disruptionMax = 1.0
	populationMin = 5000
	populationMax = 20000
)

// roadAccessWeights drives the categorical road-access draw. The weights
// are normalized over their sum, so they need not add up to 1.
var roadAccessWeights = []struct {
	access domain.RoadAccess
	weight float64
}{
	{domain.RoadBlocked, 0.4},
	{domain.RoadLow, 0.2},
	{domain.RoadMedium, 0.2},
	{domain.RoadHigh, 0.2},
}

// Generator produces one DistrictRecord per district of a region. It is
// pure given its randomness source; persisting the result and stamping
// the generation time is the caller's job.
type Generator struct {
	catalog DistrictSource
	coords  CoordinateSource
	rand    Rand
	logger  *slog.Logger
}

// New creates a Generator over the given reference data and random source.
func New(catalog DistrictSource, coords CoordinateSource, rnd Rand, logger *slog.Logger) *Generator {
	return &Generator{
		catalog: catalog,
		coords:  coords,
		rand:    rnd,
		logger:  logger,
	}
}

// Generate draws a fresh record for every district in the region.
// An unknown region yields an empty slice. Districts missing from the
// coordinate table still produce a record, just without a position.
//
// Draw order per district is severity, disruption, road access,
// population; scripted random sources in tests rely on it.
func (g *Generator) Generate(region string) []domain.DistrictRecord {
	districts := g.catalog.Districts(region)
	records := make([]domain.DistrictRecord, 0, len(districts))

	for _, district := range districts {
		severity := domain.Round2(g.rand.Float64())
		disruption := domain.Round2(disruptionMin + g.rand.Float64()*(disruptionMax-disruptionMin))
		road := g.sampleRoadAccess()
		population := populationMin + g.rand.IntN(populationMax-populationMin+1)

		flood := domain.DeriveFloodIndex(disruption)
		urgency := domain.ComputeUrgency(disruption, flood, severity, road)

		rec := domain.DistrictRecord{
			District:        district,
			WeatherSeverity: severity,
			DisruptionIndex: disruption,
			FloodIndex:      flood,
			RoadAccess:      road,
			UrgencyScore:    urgency,
			Recommendation:  domain.TierFor(urgency),
			Population:      population,
		}

		if geo, ok := g.coords.Lookup(district); ok {
			rec.Geo = &geo
		} else {
			g.logger.Debug("district missing from coordinate table", "district", district, "region", region)
		}

		records = append(records, rec)
	}

	return records
}

// sampleRoadAccess draws a road-access category with the configured weights.
func (g *Generator) sampleRoadAccess() domain.RoadAccess {
	total := 0.0
	for _, w := range roadAccessWeights {
		total += w.weight
	}

	r := g.rand.Float64() * total
	for _, w := range roadAccessWeights {
		if r < w.weight {
			return w.access
		}
		r -= w.weight
	}
	return roadAccessWeights[len(roadAccessWeights)-1].access
}
