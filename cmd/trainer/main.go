// Command trainer fits the per-state forecast bundles from the processed
// metrics snapshot and publishes the forecast artifact.
package main

import (
	"flag"
	"log"

	"github.com/google/uuid"

	"darpan_backend/artifacts"
	"darpan_backend/config"
	"darpan_backend/forecast"
	"darpan_backend/utils"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	snapshotPath := flag.String("snapshot", config.SnapshotPath(), "processed metrics snapshot to train from")
	out := flag.String("out", config.ForecastPath(), "forecast file to publish")
	flag.Parse()

	runID := uuid.NewString()
	log.Printf("Training run %s: %s -> %s", runID, *snapshotPath, *out)

	records, err := artifacts.ReadSnapshot(*snapshotPath)
	if err != nil {
		log.Fatalf("Training run %s aborted: %v", runID, err)
	}
	// Legacy snapshots may predate name normalization; group on the
	// canonical spelling either way.
	for i := range records {
		records[i].State = utils.NormalizeLocation(records[i].State)
	}

	forecasts := forecast.Train(records)
	if err := artifacts.WriteForecasts(*out, forecasts); err != nil {
		log.Fatalf("Training run %s aborted: %v", runID, err)
	}
	log.Printf("Training run %s complete: %d states published", runID, len(forecasts))
}
