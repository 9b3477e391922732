package dashboard

import (
	"time"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
	"github.com/couchcryptid/crisis-coordination-service/internal/session"
)

// Tier colors for map rendering, RGBA.
var tierColors = map[domain.Tier][4]int{
	domain.TierImmediate: {255, 0, 0, 180},
	domain.TierUrgent:    {255, 165, 0, 160},
	domain.TierMonitor:   {0, 128, 0, 120},
}

// TableView is the district table projection.
type TableView struct {
	Region      string                  `json:"region"`
	GeneratedAt time.Time               `json:"generated_at"`
	Rows        []domain.DistrictRecord `json:"rows"`
}

// ResourceRow pairs a district with its derived resource needs.
type ResourceRow struct {
	District     string  `json:"district"`
	UrgencyScore float64 `json:"urgency_score"`
	Population   int     `json:"population"`
	domain.ResourceNeeds
}

// Capacities carries the sidebar capacity totals. They are echoed back
// untouched; no demand-vs-capacity check consumes them.
type Capacities struct {
	Food    int `json:"food"`
	Shelter int `json:"shelter"`
	Medical int `json:"medical"`
}

// ResourceView is the resource prioritization projection.
type ResourceView struct {
	Region      string               `json:"region"`
	Rows        []ResourceRow        `json:"rows"`
	TotalDemand domain.ResourceNeeds `json:"total_demand"`
	Capacities  Capacities           `json:"capacities"`
}

// ChartEntry is one bar of the urgency chart.
type ChartEntry struct {
	District     string  `json:"district"`
	UrgencyScore float64 `json:"urgency_score"`
}

// ChartView is the recommendations summary projection: per-tier counts
// plus districts ordered by descending urgency.
type ChartView struct {
	Region     string              `json:"region"`
	TierCounts map[domain.Tier]int `json:"tier_counts"`
	ByUrgency  []ChartEntry        `json:"by_urgency"`
}

// MapPoint is one positioned district for the scatter map.
type MapPoint struct {
	District     string      `json:"district"`
	Lat          float64     `json:"lat"`
	Lon          float64     `json:"lon"`
	Color        [4]int      `json:"color"`
	UrgencyScore float64     `json:"urgency_score"`
	Tier         domain.Tier `json:"tier"`
}

// MapView is the map projection. Districts without coordinates are
// excluded and counted so the caller can message the degraded case.
type MapView struct {
	Region          string     `json:"region"`
	Points          []MapPoint `json:"points"`
	WithoutPosition int        `json:"without_position"`
}

// Heatmap readiness states. Empty (zero rows after filtering) and
// insufficient (fewer than two rows) are distinct, separately messaged
// non-error conditions.
const (
	HeatmapOK           = "ok"
	HeatmapEmpty        = "empty"
	HeatmapInsufficient = "insufficient"
)

// HeatmapView is the urgency heatmap projection.
type HeatmapView struct {
	Region string       `json:"region"`
	Status string       `json:"status"`
	Cells  []ChartEntry `json:"cells"`
}

// Table builds the district table for the session's region under the
// given tier filter.
func (s *Service) Table(st *session.State, filter domain.TierFilter) (TableView, error) {
	ds, records, err := s.Dataset(st, filter)
	if err != nil {
		return TableView{}, err
	}
	return TableView{Region: ds.Region, GeneratedAt: ds.GeneratedAt, Rows: records}, nil
}

// Resources builds the resource prioritization view. Needs are derived
// per call and never cached; capacities pass through unenforced.
func (s *Service) Resources(st *session.State, filter domain.TierFilter, capacities Capacities) (ResourceView, error) {
	ds, records, err := s.Dataset(st, filter)
	if err != nil {
		return ResourceView{}, err
	}

	rows := make([]ResourceRow, 0, len(records))
	var total domain.ResourceNeeds
	for _, r := range records {
		needs := domain.NeedsFor(r)
		total.Food += needs.Food
		total.Shelter += needs.Shelter
		total.Medical += needs.Medical
		rows = append(rows, ResourceRow{
			District:      r.District,
			UrgencyScore:  r.UrgencyScore,
			Population:    r.Population,
			ResourceNeeds: needs,
		})
	}

	return ResourceView{Region: ds.Region, Rows: rows, TotalDemand: total, Capacities: capacities}, nil
}

// Chart builds the recommendations summary.
func (s *Service) Chart(st *session.State, filter domain.TierFilter) (ChartView, error) {
	ds, records, err := s.Dataset(st, filter)
	if err != nil {
		return ChartView{}, err
	}

	counts := map[domain.Tier]int{}
	for _, r := range records {
		counts[r.Recommendation]++
	}

	sorted := sortByUrgencyDesc(records)
	entries := make([]ChartEntry, 0, len(sorted))
	for _, r := range sorted {
		entries = append(entries, ChartEntry{District: r.District, UrgencyScore: r.UrgencyScore})
	}

	return ChartView{Region: ds.Region, TierCounts: counts, ByUrgency: entries}, nil
}

// Map builds the scatter map projection, dropping districts without
// coordinates.
func (s *Service) Map(st *session.State, filter domain.TierFilter) (MapView, error) {
	ds, records, err := s.Dataset(st, filter)
	if err != nil {
		return MapView{}, err
	}

	points := make([]MapPoint, 0, len(records))
	missing := 0
	for _, r := range records {
		if r.Geo == nil {
			missing++
			continue
		}
		points = append(points, MapPoint{
			District:     r.District,
			Lat:          r.Geo.Lat,
			Lon:          r.Geo.Lon,
			Color:        tierColors[r.Recommendation],
			UrgencyScore: r.UrgencyScore,
			Tier:         r.Recommendation,
		})
	}

	return MapView{Region: ds.Region, Points: points, WithoutPosition: missing}, nil
}

// Heatmap builds the urgency heatmap cells, reporting empty and
// insufficient-data states explicitly.
func (s *Service) Heatmap(st *session.State, filter domain.TierFilter) (HeatmapView, error) {
	ds, records, err := s.Dataset(st, filter)
	if err != nil {
		return HeatmapView{}, err
	}

	view := HeatmapView{Region: ds.Region, Cells: []ChartEntry{}}
	switch {
	case len(records) == 0:
		view.Status = HeatmapEmpty
		return view, nil
	case len(records) < 2:
		view.Status = HeatmapInsufficient
		return view, nil
	}

	view.Status = HeatmapOK
	for _, r := range records {
		view.Cells = append(view.Cells, ChartEntry{District: r.District, UrgencyScore: r.UrgencyScore})
	}
	return view, nil
}
