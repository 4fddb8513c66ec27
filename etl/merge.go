package etl

import (
	"log"
	"math"
	"sort"

	"darpan_backend/models"
)

// mergeAggregates left-joins the three per-category aggregates on the
// enrolment key set. A district with enrolment activity always appears in
// the output, and a missing biometric or demographic contribution fills as
// zero rather than dropping the row. Records come out sorted by state then
// district so repeated runs over the same inputs produce byte-identical
// snapshots.
func mergeAggregates(enrolment, biometric, demographic map[locationKey]int64) []models.MetricRecord {
	keys := make([]locationKey, 0, len(enrolment))
	for key := range enrolment {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].District < keys[j].District
	})

	records := make([]models.MetricRecord, 0, len(keys))
	for _, key := range keys {
		total := enrolment[key]
		record := models.MetricRecord{
			State:              key.State,
			District:           key.District,
			MobileUpdateVolume: demographic[key],
			TotalEnrolment:     total,
		}
		// Zero enrolment keeps the row with a zero ratio. Dropping the
		// district or emitting NaN would both break downstream consumers.
		if total > 0 {
			ratio := float64(biometric[key]) / float64(total)
			// The ratio never leaves [0,1], even when inconsistent sources
			// report more female enrolments than total enrolments.
			if ratio > 1 {
				log.Printf("Female count %d exceeds enrolment %d for %s / %s, capping ratio at 1",
					biometric[key], total, key.State, key.District)
				ratio = 1
			}
			record.FemaleEnrolmentPct = round3(ratio)
		}
		records = append(records, record)
	}
	return records
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
