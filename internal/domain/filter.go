package domain

import "fmt"

// TierFilter selects records by recommendation tier. FilterAll is the
// identity filter.
type TierFilter string

const (
	FilterAll       TierFilter = "All"
	FilterImmediate TierFilter = "Immediate"
	FilterUrgent    TierFilter = "Urgent"
	FilterMonitor   TierFilter = "Monitor"
)

// ParseTierFilter validates a filter selector. An empty string means FilterAll.
func ParseTierFilter(s string) (TierFilter, error) {
	switch TierFilter(s) {
	case "":
		return FilterAll, nil
	case FilterAll, FilterImmediate, FilterUrgent, FilterMonitor:
		return TierFilter(s), nil
	default:
		return "", fmt.Errorf("unknown tier filter %q", s)
	}
}

// FilterByTier returns the subsequence of records whose tier matches the
// filter, preserving order. Filtering to zero records is a valid result.
func FilterByTier(records []DistrictRecord, filter TierFilter) []DistrictRecord {
	if filter == FilterAll {
		return records
	}
	out := make([]DistrictRecord, 0, len(records))
	for _, r := range records {
		if r.Recommendation == Tier(filter) {
			out = append(out, r)
		}
	}
	return out
}
