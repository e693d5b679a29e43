// Package screener assembles the per-company screening view: the stored
// canonical history plus the qualitative booleans and trend labels a
// screening decision consumes. Rendering the view is someone else's job.
package screener

import (
	"context"
	"fmt"
	"log/slog"

	"earnings-screener/internal/calc"
	"earnings-screener/internal/metrics"
	"earnings-screener/internal/models"
)

// Store loads stored canonical history for view assembly.
type Store interface {
	LoadByCompanyDuration(ctx context.Context, companyID int, duration string) ([]*models.EarningsReport, error)
}

// Options tune the trend classifier and the margin check.
type Options struct {
	// MarginFactor divides gross margin to form the theoretical net
	// margin a well-run company of that profile should reach.
	MarginFactor float64
	// WindowLength is the short-term trend window size in reports.
	WindowLength int
	// FlatThreshold is the fractional change below which a window
	// counts as flat.
	FlatThreshold float64
	// CountThreshold is the number of agreeing windows required to
	// call a short-term direction.
	CountThreshold int
	// IgnoreNone skips absent metric values instead of poisoning the
	// window into a mixed classification.
	IgnoreNone bool
}

// DefaultOptions returns the thresholds used when callers have no
// opinion of their own.
func DefaultOptions() Options {
	return Options{
		MarginFactor:   3,
		WindowLength:   2,
		FlatThreshold:  0.02,
		CountThreshold: 2,
		IgnoreNone:     true,
	}
}

// MetricTrend pairs the two horizons for one metric.
type MetricTrend struct {
	Metric    string     `json:"metric"`
	ShortTerm calc.Trend `json:"short_term"`
	LongTerm  calc.Trend `json:"long_term"`
}

// CompanyView is everything the screening decision needs for one company
// and duration. Reports are ordered oldest first.
type CompanyView struct {
	CompanyID            int                      `json:"company_id"`
	Duration             string                   `json:"duration"`
	Reports              []*models.EarningsReport `json:"reports"`
	TheoreticalNetMargin float64                  `json:"theoretical_net_margin"`
	NetMarginOptimized   bool                     `json:"net_margin_optimized"`
	HealthyCashPosition  bool                     `json:"healthy_cash_position"`
	Trends               []MetricTrend            `json:"trends"`
}

// Screener builds company views from stored history.
type Screener struct {
	store Store
	log   *slog.Logger
	opts  Options
}

// New creates a screener with the given options.
func New(store Store, log *slog.Logger, opts Options) *Screener {
	return &Screener{store: store, log: log, opts: opts}
}

// trendFields lists the metrics the view classifies, in display order.
var trendFields = []struct {
	name  string
	field metrics.Field
}{
	{"revenue", metrics.FieldRevenue},
	{"gross_profit", metrics.FieldGrossProfit},
	{"gross_margin", metrics.FieldGrossMargin},
	{"operating_margin", metrics.FieldOperatingMargin},
	{"net_margin", metrics.FieldNetMargin},
	{"retained_earnings", metrics.FieldRetainedEarnings},
	{"net_interest_income", metrics.FieldNetInterestIncome},
	{"ffo_margin", metrics.FieldFfoMargin},
	{"free_cash_flow", metrics.FieldFreeCashFlow},
}

// Evaluate loads the company's history for one duration and classifies
// it. The qualitative checks run against the latest report; an empty
// history is an error distinct from a store failure only by message.
func (s *Screener) Evaluate(ctx context.Context, companyID int, duration string) (*CompanyView, error) {
	reports, err := s.store.LoadByCompanyDuration(ctx, companyID, duration)
	if err != nil {
		return nil, fmt.Errorf("loading %s history for company %d: %w", duration, companyID, err)
	}
	if len(reports) == 0 {
		return nil, fmt.Errorf("no %s reports stored for company %d", duration, companyID)
	}

	// The store returns newest first; trends read oldest first.
	latest := reports[0]
	oldestFirst := make([]*models.EarningsReport, len(reports))
	for i, r := range reports {
		oldestFirst[len(reports)-1-i] = r
	}

	theoretical, optimized := metrics.NetMarginOptimized(latest, s.opts.MarginFactor)

	view := &CompanyView{
		CompanyID:            companyID,
		Duration:             duration,
		Reports:              oldestFirst,
		TheoreticalNetMargin: theoretical,
		NetMarginOptimized:   optimized,
		HealthyCashPosition:  metrics.HealthyCashPosition(latest),
		Trends:               make([]MetricTrend, 0, len(trendFields)),
	}
	for _, tf := range trendFields {
		view.Trends = append(view.Trends, MetricTrend{
			Metric:    tf.name,
			ShortTerm: metrics.ShortTermTrend(oldestFirst, tf.field, s.opts.WindowLength, s.opts.IgnoreNone, s.opts.FlatThreshold, s.opts.CountThreshold),
			LongTerm:  metrics.LongTermTrend(oldestFirst, tf.field, s.opts.IgnoreNone, s.opts.FlatThreshold),
		})
	}

	s.log.Debug("company view assembled",
		"company_id", companyID, "duration", duration, "reports", len(reports))
	return view, nil
}
