package domain

import "math"

// Per-capita need coefficients, scaled by urgency.
const (
	foodFactor    = 0.02
	shelterFactor = 0.01
	medicalFactor = 0.015
)

// ResourceNeeds holds the whole-unit resource quantities a district needs.
type ResourceNeeds struct {
	Food    int `json:"food_needed"`
	Shelter int `json:"shelter_needed"`
	Medical int `json:"medical_needed"`
}

// NeedsFor derives resource needs from a record's urgency and population.
// Each quantity is an independent linear scaling floored to whole units;
// no cross-district normalization is applied.
func NeedsFor(r DistrictRecord) ResourceNeeds {
	base := r.UrgencyScore * float64(r.Population)
	return ResourceNeeds{
		Food:    int(math.Floor(base * foodFactor)),
		Shelter: int(math.Floor(base * shelterFactor)),
		Medical: int(math.Floor(base * medicalFactor)),
	}
}
