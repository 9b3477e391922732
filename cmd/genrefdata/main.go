// Command genrefdata writes the two reference CSVs the dashboard loads at
// startup: the district coordinate table and the region-to-district
// catalog. It exists so a dev checkout can run the service without any
// external data drop.
//
// Usage:
//
//	go run ./cmd/genrefdata -out-dir data
//
// A couple of districts are intentionally left out of the coordinate
// table so the degraded no-map-position path stays exercised in dev.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
)

type district struct {
	name     string
	lat, lon float64
	noCoords bool
}

var regions = []struct {
	name      string
	districts []district
}{
	{"Telangana", []district{
		{name: "Hyderabad", lat: 17.3850, lon: 78.4867},
		{name: "Adilabad", lat: 19.6640, lon: 78.5320},
		{name: "Warangal", lat: 17.9689, lon: 79.5941},
		{name: "Nizamabad", lat: 18.6725, lon: 78.0941},
		{name: "Karimnagar", lat: 18.4386, lon: 79.1288},
		{name: "Khammam", noCoords: true},
	}},
	{"Maharashtra", []district{
		{name: "Mumbai", lat: 19.0760, lon: 72.8777},
		{name: "Pune", lat: 18.5204, lon: 73.8567},
		{name: "Nagpur", lat: 21.1458, lon: 79.0882},
		{name: "Nashik", lat: 19.9975, lon: 73.7898},
		{name: "Aurangabad", lat: 19.8762, lon: 75.3433},
		{name: "Solapur", lat: 17.6599, lon: 75.9064},
	}},
	{"Delhi", []district{
		{name: "New Delhi", lat: 28.6139, lon: 77.2090},
		{name: "North Delhi", lat: 28.7041, lon: 77.1025},
		{name: "South Delhi", lat: 28.4817, lon: 77.1873},
		{name: "East Delhi", lat: 28.6280, lon: 77.2789},
		{name: "West Delhi", lat: 28.6663, lon: 77.0469},
	}},
	{"West Bengal", []district{
		{name: "Kolkata", lat: 22.5726, lon: 88.3639},
		{name: "Howrah", lat: 22.5958, lon: 88.2636},
		{name: "Darjeeling", lat: 27.0360, lon: 88.2627},
		{name: "Siliguri", lat: 26.7271, lon: 88.3953},
		{name: "Malda", noCoords: true},
	}},
	{"Tamil Nadu", []district{
		{name: "Chennai", lat: 13.0827, lon: 80.2707},
		{name: "Coimbatore", lat: 11.0168, lon: 76.9558},
		{name: "Madurai", lat: 9.9252, lon: 78.1198},
		{name: "Tiruchirappalli", lat: 10.7905, lon: 78.7047},
		{name: "Salem", lat: 11.6643, lon: 78.1460},
	}},
	{"Karnataka", []district{
		{name: "Bengaluru Urban", lat: 12.9716, lon: 77.5946},
		{name: "Mysuru", lat: 12.2958, lon: 76.6394},
		{name: "Mangaluru", lat: 12.9141, lon: 74.8560},
		{name: "Hubballi", lat: 15.3647, lon: 75.1240},
		{name: "Belagavi", lat: 15.8497, lon: 74.4977},
	}},
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	outDir := flag.String("out-dir", "data", "directory to write the reference CSVs into")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	coordsPath := filepath.Join(*outDir, "district_coordinates.csv")
	if err := writeCoordinates(coordsPath); err != nil {
		return fmt.Errorf("writing coordinates: %w", err)
	}
	log.Printf("wrote coordinate table: %s", coordsPath)

	districtsPath := filepath.Join(*outDir, "districts.csv")
	if err := writeCatalog(districtsPath); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	log.Printf("wrote district catalog: %s", districtsPath)

	return nil
}

func writeCoordinates(path string) error {
	rows := [][]string{{"District", "Latitude", "Longitude"}}
	for _, region := range regions {
		for _, d := range region.districts {
			if d.noCoords {
				continue
			}
			rows = append(rows, []string{
				d.name,
				strconv.FormatFloat(d.lat, 'f', 4, 64),
				strconv.FormatFloat(d.lon, 'f', 4, 64),
			})
		}
	}
	return writeCSV(path, rows)
}

func writeCatalog(path string) error {
	rows := [][]string{{"State", "District"}}
	for _, region := range regions {
		for _, d := range region.districts {
			rows = append(rows, []string{region.name, d.name})
		}
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
