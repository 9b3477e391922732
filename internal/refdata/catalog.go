package refdata

import (
	"fmt"
	"log/slog"
)

// Catalog answers "which districts belong to this region" from the
// State,District reference CSV. Region order and district order both
// follow order of appearance in the file. An unknown region yields an
// empty list, not an error.
type Catalog struct {
	rows    [][]string // (state, district) pairs in file order
	regions []string
}

// LoadCatalog reads the State,District CSV. Per-region district lists are
// built lazily by Districts; wrap the catalog with NewCachedCatalog to
// memoize them.
func LoadCatalog(path string, logger *slog.Logger) (*Catalog, error) {
	rows, err := readCSV(path, []string{"State", "District"})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	seen := map[string]bool{}
	var regions []string
	for _, row := range rows {
		if row[0] == "" || row[1] == "" {
			continue
		}
		if !seen[row[0]] {
			seen[row[0]] = true
			regions = append(regions, row[0])
		}
	}

	logger.Info("district catalog loaded", "path", path, "regions", len(regions), "rows", len(rows))
	return &Catalog{rows: rows, regions: regions}, nil
}

// Len reports the number of district rows in the catalog.
func (c *Catalog) Len() int {
	n := 0
	for _, row := range c.rows {
		if row[0] != "" && row[1] != "" {
			n++
		}
	}
	return n
}

// Regions lists the known region names in file order.
func (c *Catalog) Regions() []string {
	out := make([]string, len(c.regions))
	copy(out, c.regions)
	return out
}

// Districts returns the region's district names in file order by scanning
// the full row set. Unknown regions return an empty slice.
func (c *Catalog) Districts(region string) []string {
	districts := []string{}
	for _, row := range c.rows {
		if row[0] == region && row[1] != "" {
			districts = append(districts, row[1])
		}
	}
	return districts
}

// CachedCatalog memoizes Districts lookups behind an LRU cache, so each
// region's list is built at most once while it stays warm.
type CachedCatalog struct {
	inner    *Catalog
	cache    *lruCache
	onLookup func(hit bool)
}

// NewCachedCatalog wraps a catalog with an LRU of maxEntries regions.
// onLookup, if non-nil, is invoked per lookup with the cache outcome.
func NewCachedCatalog(inner *Catalog, maxEntries int, onLookup func(hit bool)) *CachedCatalog {
	return &CachedCatalog{
		inner:    inner,
		cache:    newLRUCache(maxEntries),
		onLookup: onLookup,
	}
}

// Regions delegates to the underlying catalog.
func (c *CachedCatalog) Regions() []string {
	return c.inner.Regions()
}

// Districts returns the cached district list for a region, building and
// caching it on first access. Empty results are cached too: an unknown
// region stays unknown until the process restarts.
func (c *CachedCatalog) Districts(region string) []string {
	if districts, ok := c.cache.get(region); ok {
		c.lookupOutcome(true)
		return districts
	}
	c.lookupOutcome(false)

	districts := c.inner.Districts(region)
	c.cache.put(region, districts)
	return districts
}

func (c *CachedCatalog) lookupOutcome(hit bool) {
	if c.onLookup != nil {
		c.onLookup(hit)
	}
}
