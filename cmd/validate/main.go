// Command validate performs integrity checks over the dashboard's
// reference CSVs: the district coordinate table and the region-to-district
// catalog. It verifies parseability, coordinate ranges, duplicate
// districts, and per-region coordinate coverage, and exits non-zero when
// any phase fails.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -coordinates data/district_coordinates.csv \
//	  -districts data/districts.csv
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/crisis-coordination-service/internal/refdata"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	coordsPath := flag.String("coordinates", "", "path to the District,Latitude,Longitude CSV")
	districtsPath := flag.String("districts", "", "path to the State,District CSV")
	flag.Parse()

	if *coordsPath == "" || *districtsPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	if code := run(*coordsPath, *districtsPath); code != 0 {
		os.Exit(code)
	}
}

func run(coordsPath, districtsPath string) int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	fmt.Println("=== Reference Data Validation ===")
	fmt.Println()

	coords, err := refdata.LoadCoordinates(coordsPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load coordinate table: %v\n", err)
		return 1
	}

	catalog, err := refdata.LoadCatalog(districtsPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: load district catalog: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateCoordinateRanges(coords, catalog),
		validateDuplicates(catalog),
		validateCoverage(coords, catalog),
	}

	fmt.Println()
	allPassed := true
	for _, p := range phases {
		if p.passed() {
			fmt.Printf("PASS  %s\n", p.name)
			continue
		}
		allPassed = false
		fmt.Printf("FAIL  %s\n", p.name)
		for _, e := range p.errors {
			fmt.Printf("      - %s\n", e)
		}
	}

	if !allPassed {
		return 1
	}
	fmt.Println()
	fmt.Println("all phases passed")
	return 0
}

// validateCoordinateRanges checks every cataloged district with a
// coordinate entry for plausible WGS-84 values.
func validateCoordinateRanges(coords *refdata.CoordinateTable, catalog *refdata.Catalog) *phase {
	p := &phase{name: "coordinate ranges"}

	for _, region := range catalog.Regions() {
		for _, district := range catalog.Districts(region) {
			geo, ok := coords.Lookup(district)
			if !ok {
				continue
			}
			if geo.Lat < -90 || geo.Lat > 90 {
				p.errorf("%s: latitude %.4f out of range", district, geo.Lat)
			}
			if geo.Lon < -180 || geo.Lon > 180 {
				p.errorf("%s: longitude %.4f out of range", district, geo.Lon)
			}
			if geo.Lat == 0 && geo.Lon == 0 {
				p.errorf("%s: null island coordinates", district)
			}
		}
	}
	return p
}

// validateDuplicates flags districts listed more than once within a region.
func validateDuplicates(catalog *refdata.Catalog) *phase {
	p := &phase{name: "duplicate districts"}

	for _, region := range catalog.Regions() {
		seen := map[string]bool{}
		for _, district := range catalog.Districts(region) {
			if seen[district] {
				p.errorf("%s: district %q listed twice", region, district)
			}
			seen[district] = true
		}
	}
	return p
}

// validateCoverage reports regions with no mappable districts at all.
// Individual missing districts are expected (the dashboard renders them
// without a position); whole regions without coordinates are not.
func validateCoverage(coords *refdata.CoordinateTable, catalog *refdata.Catalog) *phase {
	p := &phase{name: "coordinate coverage"}

	for _, region := range catalog.Regions() {
		districts := catalog.Districts(region)
		if len(districts) == 0 {
			p.errorf("%s: no districts cataloged", region)
			continue
		}
		covered := 0
		for _, district := range districts {
			if _, ok := coords.Lookup(district); ok {
				covered++
			}
		}
		if covered == 0 {
			p.errorf("%s: none of %d districts have coordinates", region, len(districts))
		}
	}
	return p
}
