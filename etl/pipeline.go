// Package etl implements the offline ingestion batch: the raw CSV categories
// are aggregated per location, merged into the canonical metrics table and
// published as the snapshot artifact served by the API.
package etl

import (
	"errors"
	"fmt"

	"darpan_backend/artifacts"
)

// Batch-fatal conditions. Either one aborts the run before the snapshot is
// touched: a partial snapshot corrupts every derived ratio and forecast, so
// no output is better than partial output.
var (
	ErrSourceMissing  = errors.New("source category has no data")
	ErrSchemaMismatch = errors.New("source schema mismatch")
)

// locationKey joins the three sources once state and district names have
// been normalized.
type locationKey struct {
	State    string
	District string
}

// Run executes one ingestion batch and returns the number of canonical
// records written. Any failure returns before the snapshot artifact is
// replaced, leaving the previous snapshot untouched.
func Run(rawDir, snapshotPath string) (int, error) {
	enrolment, err := loadCategory(rawDir, CategoryEnrolment)
	if err != nil {
		return 0, fmt.Errorf("enrolment: %w", err)
	}
	biometric, err := loadCategory(rawDir, CategoryBiometric)
	if err != nil {
		return 0, fmt.Errorf("biometric: %w", err)
	}
	demographic, err := loadCategory(rawDir, CategoryDemographic)
	if err != nil {
		return 0, fmt.Errorf("demographic: %w", err)
	}

	records := mergeAggregates(enrolment, biometric, demographic)
	if err := artifacts.WriteSnapshot(snapshotPath, records); err != nil {
		return 0, fmt.Errorf("writing snapshot: %w", err)
	}
	return len(records), nil
}
