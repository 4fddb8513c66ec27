package models

// MetricRecord is one row of the processed metrics snapshot: the activity of
// a single (state, district) pair reconciled across the enrolment, biometric
// and demographic sources. The JSON names are the snapshot contract consumed
// by the dashboard; the casing of State/District is historical.
type MetricRecord struct {
	State              string  `json:"State"`
	District           string  `json:"District"`
	MobileUpdateVolume int64   `json:"mobile_update_volume"`
	FemaleEnrolmentPct float64 `json:"female_enrolment_pct"`
	TotalEnrolment     int64   `json:"total_enrolment"`
}
