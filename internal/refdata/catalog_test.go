package refdata

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogCSV = "State,District\n" +
	"Telangana,Hyderabad\n" +
	"Telangana,Adilabad\n" +
	"Telangana,Warangal\n" +
	"Delhi,New Delhi\n" +
	"Delhi,South Delhi\n"

func loadTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	path := writeTempCSV(t, "districts.csv", catalogCSV)
	catalog, err := LoadCatalog(path, slog.Default())
	require.NoError(t, err)
	return catalog
}

func TestCatalog_Districts(t *testing.T) {
	catalog := loadTestCatalog(t)

	t.Run("file order preserved", func(t *testing.T) {
		assert.Equal(t, []string{"Hyderabad", "Adilabad", "Warangal"}, catalog.Districts("Telangana"))
		assert.Equal(t, []string{"New Delhi", "South Delhi"}, catalog.Districts("Delhi"))
	})

	t.Run("unknown region is empty, not an error", func(t *testing.T) {
		districts := catalog.Districts("Narnia")
		assert.NotNil(t, districts)
		assert.Empty(t, districts)
	})
}

func TestCatalog_Regions(t *testing.T) {
	catalog := loadTestCatalog(t)
	assert.Equal(t, []string{"Telangana", "Delhi"}, catalog.Regions())
}

func TestCachedCatalog_MemoizesLookups(t *testing.T) {
	catalog := loadTestCatalog(t)

	var hits, misses int
	cached := NewCachedCatalog(catalog, 8, func(hit bool) {
		if hit {
			hits++
		} else {
			misses++
		}
	})

	first := cached.Districts("Telangana")
	second := cached.Districts("Telangana")

	assert.Equal(t, first, second)
	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, misses)
}

func TestCachedCatalog_CachesEmptyResults(t *testing.T) {
	catalog := loadTestCatalog(t)

	var misses int
	cached := NewCachedCatalog(catalog, 8, func(hit bool) {
		if !hit {
			misses++
		}
	})

	assert.Empty(t, cached.Districts("Narnia"))
	assert.Empty(t, cached.Districts("Narnia"))
	assert.Equal(t, 1, misses, "unknown region should be cached after first lookup")
}

func TestCachedCatalog_NilHookIsAllowed(t *testing.T) {
	cached := NewCachedCatalog(loadTestCatalog(t), 8, nil)
	assert.Len(t, cached.Districts("Delhi"), 2)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", []string{"one"})
	cache.put("b", []string{"two"})

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := cache.get("a")
	require.True(t, ok)

	cache.put("c", []string{"three"})

	_, ok = cache.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = cache.get("a")
	assert.True(t, ok)
	_, ok = cache.get("c")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExistingKey(t *testing.T) {
	cache := newLRUCache(2)

	cache.put("a", []string{"one"})
	cache.put("a", []string{"uno"})

	got, ok := cache.get("a")
	require.True(t, ok)
	assert.Equal(t, []string{"uno"}, got)
}
