package etl

import "strings"

// Category identifies one raw dataset family under the raw data directory.
// Each category lives in its own subdirectory and contributes one derived
// metric to the canonical record.
type Category string

const (
	CategoryEnrolment   Category = "enrolment"
	CategoryBiometric   Category = "biometric"
	CategoryDemographic Category = "demographic"
)

// sourceSchema is one known header layout for a category. The upstream
// portal renamed its columns between export generations, so every generation
// is declared here explicitly and a file whose header matches none of them
// fails the run instead of being guessed at.
type sourceSchema struct {
	version  string
	state    string
	district string
	// brackets are the per-row columns summed into the category's derived
	// metric.
	brackets []string
}

var sourceSchemas = map[Category][]sourceSchema{
	CategoryEnrolment: {
		{
			version:  "v2",
			state:    "state",
			district: "district",
			brackets: []string{"age_0_5", "age_5_17", "age_18_greater"},
		},
		{
			version:  "v1",
			state:    "State",
			district: "District",
			brackets: []string{"Age_0_5", "Age_5_17", "Age_18_Greater"},
		},
	},
	CategoryBiometric: {
		{
			version:  "v2",
			state:    "state",
			district: "district",
			brackets: []string{"bio_age_5_17", "bio_age_17_"},
		},
		{
			version:  "v1",
			state:    "State",
			district: "District",
			brackets: []string{"Bio_Age_5_17", "Bio_Age_17_"},
		},
	},
	CategoryDemographic: {
		{
			version:  "v2",
			state:    "state",
			district: "district",
			brackets: []string{"demo_age_5_17", "demo_age_17_"},
		},
		{
			version:  "v1",
			state:    "State",
			district: "District",
			brackets: []string{"Demo_Age_5_17", "Demo_Age_17_"},
		},
	},
}

// matchSchema finds the declared schema whose column set equals the header
// exactly, ignoring column order. Supersets and subsets both fail: an extra
// or missing column means the export format changed and needs a new schema
// entry, not a silent partial read.
func matchSchema(category Category, header []string) (sourceSchema, bool) {
	for _, schema := range sourceSchemas[category] {
		if schema.matches(header) {
			return schema, true
		}
	}
	return sourceSchema{}, false
}

func (s sourceSchema) columns() []string {
	cols := make([]string, 0, len(s.brackets)+2)
	cols = append(cols, s.state, s.district)
	return append(cols, s.brackets...)
}

func (s sourceSchema) matches(header []string) bool {
	want := s.columns()
	if len(header) != len(want) {
		return false
	}
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[strings.TrimSpace(col)] = true
	}
	for _, col := range want {
		if !seen[col] {
			return false
		}
	}
	return true
}
