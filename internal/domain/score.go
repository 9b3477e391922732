package domain

import "math"

// Urgency score weights. They sum to 1.0 when the road contribution
// applies, which bounds the score to [0,1].
const (
	weightDisruption = 0.4
	weightFlood      = 0.2
	weightWeather    = 0.2
	weightBlocked    = 0.2
)

// Tier thresholds. Comparisons are strict: a score of exactly 0.70 is
// Urgent, exactly 0.50 is Monitor.
const (
	immediateThreshold = 0.7
	urgentThreshold    = 0.5
)

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveFloodIndex maps a disruption index to the integer flood index
// floor(min(10, disruption*10)). For disruption in [0.7,1.0] the result
// is in [7,10].
func DeriveFloodIndex(disruption float64) int {
	return int(math.Floor(math.Min(10, disruption*10)))
}

// ComputeUrgency returns the weighted urgency score, rounded to two
// decimals. Blocked road access contributes a flat 0.2; the other
// categories contribute nothing.
func ComputeUrgency(disruption float64, floodIndex int, severity float64, road RoadAccess) float64 {
	score := weightDisruption*disruption +
		weightFlood*(float64(floodIndex)/10) +
		weightWeather*severity
	if road == RoadBlocked {
		score += weightBlocked
	}
	return Round2(score)
}

// TierFor classifies an urgency score into a recommendation tier.
func TierFor(urgency float64) Tier {
	switch {
	case urgency > immediateThreshold:
		return TierImmediate
	case urgency > urgentThreshold:
		return TierUrgent
	default:
		return TierMonitor
	}
}
