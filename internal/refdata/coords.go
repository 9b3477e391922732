// Package refdata loads the static reference tables the dashboard depends
// on: district coordinates and the region-to-district catalog. Both are
// read from CSV once at startup; a missing or unreadable file is fatal,
// while individually malformed rows are skipped with a warning.
package refdata

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/crisis-coordination-service/internal/domain"
)

// CoordinateTable maps district names to coordinates. Lookups that miss
// are a degraded case, not an error: the caller renders the district
// without a map position.
type CoordinateTable struct {
	coords map[string]domain.Geo
}

// LoadCoordinates reads a District,Latitude,Longitude CSV into memory.
// Rows with unparseable coordinates are skipped and counted.
func LoadCoordinates(path string, logger *slog.Logger) (*CoordinateTable, error) {
	rows, err := readCSV(path, []string{"District", "Latitude", "Longitude"})
	if err != nil {
		return nil, fmt.Errorf("load coordinates: %w", err)
	}

	coords := make(map[string]domain.Geo, len(rows))
	skipped := 0
	for _, row := range rows {
		lat, errLat := strconv.ParseFloat(row[1], 64)
		lon, errLon := strconv.ParseFloat(row[2], 64)
		if row[0] == "" || errLat != nil || errLon != nil {
			skipped++
			continue
		}
		coords[row[0]] = domain.Geo{Lat: lat, Lon: lon}
	}

	if skipped > 0 {
		logger.Warn("skipped malformed coordinate rows", "path", path, "skipped", skipped)
	}
	logger.Info("coordinate table loaded", "path", path, "districts", len(coords))

	return &CoordinateTable{coords: coords}, nil
}

// Lookup returns the coordinates for a district, reporting whether the
// district is present in the table.
func (t *CoordinateTable) Lookup(district string) (domain.Geo, bool) {
	geo, ok := t.coords[district]
	return geo, ok
}

// Len reports how many districts have coordinates.
func (t *CoordinateTable) Len() int {
	return len(t.coords)
}

// readCSV reads all data rows of a CSV file, resolving columns by header
// name so column order in the file does not matter. Rows missing a
// requested column are dropped.
func readCSV(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; they are dropped below
	raw, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(raw) < 1 {
		return nil, fmt.Errorf("missing header row")
	}

	colIdx := map[string]int{}
	for i, h := range raw[0] {
		colIdx[strings.TrimSpace(h)] = i
	}
	for _, col := range columns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	rows := make([][]string, 0, len(raw)-1)
	for _, rawRow := range raw[1:] {
		row := make([]string, len(columns))
		short := false
		for i, col := range columns {
			idx := colIdx[col]
			if idx >= len(rawRow) {
				short = true
				break
			}
			row[i] = strings.TrimSpace(rawRow[idx])
		}
		if short {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
