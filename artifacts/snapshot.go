package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"darpan_backend/models"
)

// WriteSnapshot publishes the canonical metrics table. Readers either see
// the previous snapshot or the complete new one, never a mix.
func WriteSnapshot(path string, records []models.MetricRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %v", err)
	}
	return writeAtomic(path, data)
}

// ReadSnapshot loads the metrics snapshot. Both the bare-array layout
// written by WriteSnapshot and the legacy {"records": [...]} wrapper emitted
// by earlier pipeline builds are accepted.
func ReadSnapshot(path string) ([]models.MetricRecord, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %v", path, err)
	}

	var records []models.MetricRecord
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapped struct {
			Records []models.MetricRecord `json:"records"`
		}
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
		}
		records = wrapped.Records
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s holds no records", ErrSchema, path)
	}
	for i, record := range records {
		if record.State == "" || record.District == "" {
			return nil, fmt.Errorf("%w: %s: record %d is missing its location", ErrSchema, path, i)
		}
	}
	return records, nil
}
