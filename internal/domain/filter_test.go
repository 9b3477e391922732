package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecords() []DistrictRecord {
	return []DistrictRecord{
		{District: "Adilabad", UrgencyScore: 0.82, Recommendation: TierImmediate},
		{District: "Nizamabad", UrgencyScore: 0.61, Recommendation: TierUrgent},
		{District: "Karimnagar", UrgencyScore: 0.44, Recommendation: TierMonitor},
		{District: "Warangal", UrgencyScore: 0.91, Recommendation: TierImmediate},
		{District: "Khammam", UrgencyScore: 0.55, Recommendation: TierUrgent},
	}
}

func TestFilterByTier(t *testing.T) {
	records := testRecords()

	t.Run("all is the identity filter", func(t *testing.T) {
		got := FilterByTier(records, FilterAll)
		assert.Empty(t, cmp.Diff(records, got))
	})

	t.Run("single tier filters", func(t *testing.T) {
		for _, filter := range []TierFilter{FilterImmediate, FilterUrgent, FilterMonitor} {
			got := FilterByTier(records, filter)
			require.NotEmpty(t, got)
			for _, r := range got {
				assert.Equal(t, Tier(filter), r.Recommendation)
			}
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := FilterByTier(records, FilterImmediate)
		require.Len(t, got, 2)
		assert.Equal(t, "Adilabad", got[0].District)
		assert.Equal(t, "Warangal", got[1].District)
	})

	t.Run("zero matches is a valid empty result", func(t *testing.T) {
		only := []DistrictRecord{{District: "Adilabad", Recommendation: TierImmediate}}
		got := FilterByTier(only, FilterMonitor)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestParseTierFilter(t *testing.T) {
	tests := []struct {
		input    string
		expected TierFilter
		wantErr  bool
	}{
		{"", FilterAll, false},
		{"All", FilterAll, false},
		{"Immediate", FilterImmediate, false},
		{"Urgent", FilterUrgent, false},
		{"Monitor", FilterMonitor, false},
		{"urgent", "", true}, // case sensitive
		{"bogus", "", true},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			got, err := ParseTierFilter(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
