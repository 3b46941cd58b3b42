// zonecheck validates a coordinate against the configured trusted zones and
// prints the verdict. Useful for checking zone setup before rolling it out.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/appdotbuilder/mobile-attendance/internal/config"
	"github.com/appdotbuilder/mobile-attendance/internal/db"
	"github.com/appdotbuilder/mobile-attendance/internal/geofence"
	"github.com/appdotbuilder/mobile-attendance/internal/store"
)

func main() {
	lat := flag.Float64("lat", 0, "latitude of the submission")
	lon := flag.Float64("lon", 0, "longitude of the submission")
	accuracy := flag.Float64("accuracy", -1, "reported GPS accuracy in meters (negative = not reported)")
	mock := flag.Bool("mock", false, "treat the submission as coming from a mock location provider")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	database, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	zones, err := store.NewZoneStore(database).ActiveGeofenceZones()
	if err != nil {
		log.Fatalf("load zones: %v", err)
	}

	coord := geofence.Coordinate{Latitude: *lat, Longitude: *lon}
	if *accuracy >= 0 {
		coord.AccuracyMeters = accuracy
	}

	verdict, err := geofence.NewValidator(cfg.Geofence()).Validate(coord, *mock, zones)
	if err != nil {
		log.Fatalf("validate: %v", err)
	}

	out, err := json.MarshalIndent(verdict, "", "  ")
	if err != nil {
		log.Fatalf("encode verdict: %v", err)
	}
	fmt.Println(string(out))
}
