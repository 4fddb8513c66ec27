package etl

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"darpan_backend/utils"
)

// loadCategory reads every CSV file for one category and returns the derived
// metric summed per normalized (state, district) key.
//
// All files of a category must share one header generation: the first file
// pins the schema version and any divergent file aborts the run. A category
// with no files or no data rows aborts too, so a half-delivered drop never
// produces a snapshot.
func loadCategory(rawDir string, category Category) (map[locationKey]int64, error) {
	pattern := filepath.Join(rawDir, string(category), "*.csv")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %v", pattern, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no files match %s", ErrSourceMissing, pattern)
	}
	log.Printf("Loading %d %s files from %s", len(files), category, rawDir)

	totals := make(map[locationKey]int64)
	version := ""
	rows := 0
	for _, file := range files {
		schema, n, err := accumulateFile(file, category, totals)
		if err != nil {
			return nil, err
		}
		if version == "" {
			version = schema.version
		} else if schema.version != version {
			return nil, fmt.Errorf("%w: %s uses schema %s but this run started with %s",
				ErrSchemaMismatch, file, schema.version, version)
		}
		rows += n
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s files contain no records", ErrSourceMissing, category)
	}

	log.Printf("Aggregated %d %s rows into %d locations (schema %s)", rows, category, len(totals), version)
	return totals, nil
}

// accumulateFile parses one CSV file and adds its bracket sums into totals.
func accumulateFile(path string, category Category, totals map[locationKey]int64) (sourceSchema, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return sourceSchema{}, 0, fmt.Errorf("opening %s: %v", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return sourceSchema{}, 0, fmt.Errorf("%w: %s: unreadable header: %v", ErrSchemaMismatch, path, err)
	}
	// Spreadsheet exports often prefix the first cell with a UTF-8 BOM.
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	schema, ok := matchSchema(category, header)
	if !ok {
		return sourceSchema{}, 0, fmt.Errorf("%w: %s: header %v matches no known %s layout",
			ErrSchemaMismatch, path, header, category)
	}

	index := make(map[string]int, len(header))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}

	rows := 0
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return schema, rows, fmt.Errorf("reading %s line %d: %v", path, line, err)
		}

		key := locationKey{
			State:    utils.NormalizeLocation(row[index[schema.state]]),
			District: utils.NormalizeLocation(row[index[schema.district]]),
		}
		derived := int64(0)
		for _, bracket := range schema.brackets {
			raw := strings.TrimSpace(row[index[bracket]])
			value, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || value < 0 {
				return schema, rows, fmt.Errorf("%s line %d: bad %s value %q", path, line, bracket, raw)
			}
			derived += value
		}
		totals[key] += derived
		rows++
	}
	return schema, rows, nil
}
