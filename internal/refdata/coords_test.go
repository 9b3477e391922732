package refdata

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadCoordinates(t *testing.T) {
	path := writeTempCSV(t, "coords.csv",
		"District,Latitude,Longitude\n"+
			"Hyderabad,17.385,78.4867\n"+
			"Adilabad,19.6640,78.5320\n")

	table, err := LoadCoordinates(path, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	geo, ok := table.Lookup("Hyderabad")
	require.True(t, ok)
	assert.InDelta(t, 17.385, geo.Lat, 1e-9)
	assert.InDelta(t, 78.4867, geo.Lon, 1e-9)
}

func TestLoadCoordinates_MissingDistrictIsDegraded(t *testing.T) {
	path := writeTempCSV(t, "coords.csv",
		"District,Latitude,Longitude\nHyderabad,17.385,78.4867\n")

	table, err := LoadCoordinates(path, slog.Default())
	require.NoError(t, err)

	_, ok := table.Lookup("Atlantis")
	assert.False(t, ok)
}

func TestLoadCoordinates_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, "coords.csv",
		"District,Latitude,Longitude\n"+
			"Hyderabad,17.385,78.4867\n"+
			"Mangled,not-a-float,78.0\n"+
			"Short,12.0\n"+
			"Adilabad,19.6640,78.5320\n")

	table, err := LoadCoordinates(path, slog.Default())
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())

	_, ok := table.Lookup("Mangled")
	assert.False(t, ok)
}

func TestLoadCoordinates_MissingFileIsFatal(t *testing.T) {
	_, err := LoadCoordinates(filepath.Join(t.TempDir(), "absent.csv"), slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load coordinates")
}

func TestLoadCoordinates_MissingColumnIsFatal(t *testing.T) {
	path := writeTempCSV(t, "coords.csv", "District,Lat,Lon\nHyderabad,1,2\n")

	_, err := LoadCoordinates(path, slog.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestLoadCoordinates_ColumnOrderIndependent(t *testing.T) {
	path := writeTempCSV(t, "coords.csv",
		"Longitude,District,Latitude\n78.4867,Hyderabad,17.385\n")

	table, err := LoadCoordinates(path, slog.Default())
	require.NoError(t, err)

	geo, ok := table.Lookup("Hyderabad")
	require.True(t, ok)
	assert.InDelta(t, 17.385, geo.Lat, 1e-9)
	assert.InDelta(t, 78.4867, geo.Lon, 1e-9)
}
