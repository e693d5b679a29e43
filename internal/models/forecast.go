package models

import "time"

// Forecast is the read-only staleness source for a company. It is produced
// and maintained outside this core; the refresh orchestrator only consumes
// the two due-predicates.
type Forecast struct {
	CompanyID          int       `json:"company_id"`
	ExpectedReportDate time.Time `json:"expected_report_date"`
	NextUpdateDate     time.Time `json:"next_update_date"`
}

// EarningsUpdateDue reports whether a new earnings statement is expected to
// have been published by now.
func (f Forecast) EarningsUpdateDue(now time.Time) bool {
	return !now.Before(f.ExpectedReportDate)
}

// RegularUpdateDue reports whether a non-earnings (price/guidance) refresh
// is due even though no new statement is expected.
func (f Forecast) RegularUpdateDue(now time.Time) bool {
	return !now.Before(f.NextUpdateDate)
}
