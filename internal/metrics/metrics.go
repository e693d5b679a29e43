// Package metrics derives ratio, margin and growth fields for stored
// canonical reports and exposes the qualitative checks consumed by the
// screening decision.
package metrics

import (
	"context"
	"fmt"
	"log/slog"

	"earnings-screener/internal/calc"
	"earnings-screener/internal/models"
)

// Store is the slice of the earnings repository the derivation engine
// needs: the prior-year point query and the targeted partial updates.
type Store interface {
	SameQuarterPrevYear(ctx context.Context, report *models.EarningsReport) (*models.EarningsReport, error)
	LoadByCompanyDuration(ctx context.Context, companyID int, duration string) ([]*models.EarningsReport, error)
	UpdateRatios(ctx context.Context, id int64, u models.RatioUpdate) error
	UpdateGrowth(ctx context.Context, id int64, u models.GrowthUpdate) error
}

// Deriver applies derived-metric recomputation to stored reports.
type Deriver struct {
	store Store
	log   *slog.Logger
}

// NewDeriver creates a deriver on the given store.
func NewDeriver(store Store, log *slog.Logger) *Deriver {
	return &Deriver{store: store, log: log}
}

// ComputeRatios derives every ratio/margin field from a report's stored
// values. Pure: same report in, same update out, so recomputation is
// idempotent by construction.
func ComputeRatios(r *models.EarningsReport) models.RatioUpdate {
	// Banks earn interest on the investment book plus the loan book;
	// the margin is undefined unless both are reported.
	var interestEarningAssets *float64
	if r.TotalInvestments != nil && r.GrossLoans != nil {
		sum := *r.TotalInvestments + *r.GrossLoans
		interestEarningAssets = &sum
	}

	return models.RatioUpdate{
		NetInterestMargin:             calc.RatioPct(r.NetInterestIncome, interestEarningAssets),
		CostOfRisk:                    calc.RatioPct(r.ProvisionForLoanLoss, r.GrossLoans),
		SgaGpRatio:                    calc.Ratio(r.SgaExpenses, r.GrossProfit),
		RndGpRatio:                    calc.Ratio(r.RndExpenses, r.GrossProfit),
		InterestExpensesOpIncomeRatio: calc.Ratio(r.InterestExpenses, &r.OperatingIncome),
		OperatingMargin:               calc.Pct(r.OperatingIncome, r.Revenue),
		NetMargin:                     calc.Pct(r.NetIncome, r.Revenue),
		FfoMargin:                     calc.RatioPct(r.Ffo, &r.Revenue),
		OperatingCashFlowMargin:       calc.RatioPct(r.OperatingCashFlow, &r.Revenue),
	}
}

// ComputeGrowth derives the YoY growth fields against the matching-quarter
// prior-year report. A nil prev leaves every growth field absent.
func ComputeGrowth(r, prev *models.EarningsReport) models.GrowthUpdate {
	var prevNii, prevGp *float64
	if prev != nil {
		prevNii = prev.NetInterestIncome
		prevGp = prev.GrossProfit
	}
	return models.GrowthUpdate{
		NetInterestGrowthYoY: calc.YoYGrowth(r.NetInterestIncome, prevNii),
		GrossProfitGrowthYoY: calc.YoYGrowth(r.GrossProfit, prevGp),
	}
}

// RecalcRatios computes and persists the ratio fields for one report and
// marks it ratio-calculated, mirroring the change onto the in-memory value.
func (d *Deriver) RecalcRatios(ctx context.Context, r *models.EarningsReport) error {
	u := ComputeRatios(r)
	if err := d.store.UpdateRatios(ctx, r.ID, u); err != nil {
		return err
	}
	r.NetInterestMargin = u.NetInterestMargin
	r.CostOfRisk = u.CostOfRisk
	r.SgaGpRatio = u.SgaGpRatio
	r.RndGpRatio = u.RndGpRatio
	r.InterestExpensesOpIncomeRatio = u.InterestExpensesOpIncomeRatio
	r.OperatingMargin = u.OperatingMargin
	r.NetMargin = u.NetMargin
	r.FfoMargin = u.FfoMargin
	r.OperatingCashFlowMargin = u.OperatingCashFlowMargin
	r.RatioCalculated = true
	return nil
}

// RecalcGrowth looks up the prior-year comparison, computes and persists
// the growth fields and marks the report growth-calculated. A missing
// prior year is not an error; the growth fields stay absent.
func (d *Deriver) RecalcGrowth(ctx context.Context, r *models.EarningsReport) error {
	prev, err := d.store.SameQuarterPrevYear(ctx, r)
	if err != nil {
		return err
	}
	u := ComputeGrowth(r, prev)
	if err := d.store.UpdateGrowth(ctx, r.ID, u); err != nil {
		return err
	}
	r.NetInterestGrowthYoY = u.NetInterestGrowthYoY
	r.GrossProfitGrowthYoY = u.GrossProfitGrowthYoY
	r.GrowthCalculated = true
	return nil
}

// RecalcForDuration derives metrics for every stored report of one
// duration that has not been derived yet. Reports whose flags are already
// set are skipped; recomputing them would write identical values.
func (d *Deriver) RecalcForDuration(ctx context.Context, companyID int, duration string) error {
	reports, err := d.store.LoadByCompanyDuration(ctx, companyID, duration)
	if err != nil {
		return err
	}
	var derived int
	for _, r := range reports {
		if !r.RatioCalculated {
			if err := d.RecalcRatios(ctx, r); err != nil {
				return fmt.Errorf("recalculating ratios for report %d: %w", r.ID, err)
			}
			derived++
		}
		if !r.GrowthCalculated {
			if err := d.RecalcGrowth(ctx, r); err != nil {
				return fmt.Errorf("recalculating growth for report %d: %w", r.ID, err)
			}
			derived++
		}
	}
	if derived > 0 {
		d.log.Debug("derived metrics recomputed",
			"company_id", companyID, "duration", duration, "updates", derived)
	}
	return nil
}
