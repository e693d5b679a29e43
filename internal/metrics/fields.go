package metrics

import (
	"earnings-screener/internal/calc"
	"earnings-screener/internal/models"
)

// Field extracts one numeric metric from a canonical report for trend
// analysis. Mandatory metrics always return a value; optional ones return
// nil where the concept does not apply. Keeping the extractor a function
// value keeps the trend classifier decoupled from the metric list.
type Field func(*models.EarningsReport) *float64

func FieldRevenue(r *models.EarningsReport) *float64           { return &r.Revenue }
func FieldNetMargin(r *models.EarningsReport) *float64         { return &r.NetMargin }
func FieldOperatingMargin(r *models.EarningsReport) *float64   { return &r.OperatingMargin }
func FieldRetainedEarnings(r *models.EarningsReport) *float64  { return &r.RetainedEarnings }
func FieldGrossMargin(r *models.EarningsReport) *float64       { return r.GrossMargin }
func FieldGrossProfit(r *models.EarningsReport) *float64       { return r.GrossProfit }
func FieldNetInterestIncome(r *models.EarningsReport) *float64 { return r.NetInterestIncome }
func FieldFreeCashFlow(r *models.EarningsReport) *float64      { return r.FreeCashFlow }
func FieldFfoMargin(r *models.EarningsReport) *float64         { return r.FfoMargin }

// ExtractField pulls one metric out of each report, preserving order.
func ExtractField(reports []*models.EarningsReport, field Field) []*float64 {
	values := make([]*float64, len(reports))
	for i, r := range reports {
		values[i] = field(r)
	}
	return values
}

// ShortTermTrend classifies the windowed short-term direction of one
// metric over reports ordered oldest first.
func ShortTermTrend(reports []*models.EarningsReport, field Field, length int, ignoreNone bool, flatThreshold float64, countThreshold int) calc.Trend {
	values := ExtractField(reports, field)
	windows := calc.ShortTermTrend(values, length, ignoreNone, flatThreshold)
	return calc.ConcatTrend(windows, countThreshold)
}

// LongTermTrend classifies the earliest-to-latest direction of one metric
// over reports ordered oldest first.
func LongTermTrend(reports []*models.EarningsReport, field Field, ignoreNone bool, flatThreshold float64) calc.Trend {
	values := ExtractField(reports, field)
	return calc.LongTermTrend(values, ignoreNone, flatThreshold)
}
