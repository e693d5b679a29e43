package metrics

import "earnings-screener/internal/models"

// NetMarginOptimized compares a theoretical net margin (gross margin
// divided by an industry margin factor) against the actual one. Returns
// the theoretical margin and whether the company clears it while keeping
// operating margin above net margin. A report without a gross margin is
// evaluated against a 100% gross margin.
func NetMarginOptimized(r *models.EarningsReport, marginFactor float64) (float64, bool) {
	grossMargin := 100.0
	if r.GrossMargin != nil {
		grossMargin = *r.GrossMargin
	}
	theoretical := grossMargin / marginFactor
	optimized := theoretical <= r.NetMargin && r.OperatingMargin > r.NetMargin
	return theoretical, optimized
}

// HealthyCashPosition reports whether net cash is non-negative, or the
// debt overhang is smaller than two years of current net income.
func HealthyCashPosition(r *models.EarningsReport) bool {
	return r.NetCash >= 0 || (r.NetIncome > 0 && -r.NetCash/r.NetIncome < 2)
}
