// Command pipeline runs one ingestion batch: it aggregates the raw CSV
// categories and publishes the processed metrics snapshot.
package main

import (
	"flag"
	"log"

	"github.com/google/uuid"

	"darpan_backend/config"
	"darpan_backend/etl"
)

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	rawDir := flag.String("raw", config.RawDataDir(), "directory holding the raw CSV categories")
	out := flag.String("out", config.SnapshotPath(), "snapshot file to publish")
	flag.Parse()

	runID := uuid.NewString()
	log.Printf("Ingestion run %s: %s -> %s", runID, *rawDir, *out)

	count, err := etl.Run(*rawDir, *out)
	if err != nil {
		log.Fatalf("Ingestion run %s aborted: %v", runID, err)
	}
	log.Printf("Ingestion run %s complete: %d records published", runID, count)
}
