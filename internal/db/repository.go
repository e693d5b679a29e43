package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"earnings-screener/internal/models"
)

// EarningsRepository handles database operations for canonical earnings
// reports. Conflict handling carries the idempotence contract: the insert
// does nothing on a duplicate (company_id, duration, quarter_str, year_str)
// key, so concurrent duplicate backfills are benign.
type EarningsRepository struct {
	pool *pgxpool.Pool
}

// NewEarningsRepository creates a new repository on an already-open pool.
func NewEarningsRepository(pool *pgxpool.Pool) *EarningsRepository {
	return &EarningsRepository{pool: pool}
}

const earningsColumns = `
	id, company_id, duration, quarter_str, year_str, period_ending, currency,
	net_interest_income, net_interest_growth_yoy, net_interest_margin,
	provision_for_loan_loss, cost_of_risk,
	revenue, revenue_growth_yoy, cost_of_revenue, gross_profit, gross_margin,
	gross_profit_growth_yoy,
	sga_expenses, sga_gp_ratio, rnd_expenses, rnd_gp_ratio,
	operating_expenses, operating_income, operating_margin,
	interest_expenses, interest_expenses_op_income_ratio,
	goodwill_impairment, net_income, net_margin,
	eps_basic, eps_diluted, shares_outstanding_basic,
	shares_outstanding_diluted, shares_change_yoy,
	ffo, ffo_margin,
	cash_and_equivalents, cash_and_short_term_investments, total_investments,
	gross_loans, accounts_receivable, inventory, total_current_assets,
	goodwill, total_assets, accounts_payable, total_current_liabilities,
	total_liabilities, retained_earnings, shareholders_equity, total_debt,
	net_cash,
	depreciation_and_amortization, stock_based_compensation,
	operating_cash_flow, operating_cash_flow_margin, capital_expenditure,
	investing_cash_flow, financing_cash_flow, free_cash_flow,
	free_cash_flow_margin,
	ratio_calculated, growth_calculated`

const insertEarnings = `
	INSERT INTO earnings_report (
		company_id, duration, quarter_str, year_str, period_ending, currency,
		net_interest_income, net_interest_growth_yoy, net_interest_margin,
		provision_for_loan_loss, cost_of_risk,
		revenue, revenue_growth_yoy, cost_of_revenue, gross_profit,
		gross_margin, gross_profit_growth_yoy,
		sga_expenses, sga_gp_ratio, rnd_expenses, rnd_gp_ratio,
		operating_expenses, operating_income, operating_margin,
		interest_expenses, interest_expenses_op_income_ratio,
		goodwill_impairment, net_income, net_margin,
		eps_basic, eps_diluted, shares_outstanding_basic,
		shares_outstanding_diluted, shares_change_yoy,
		ffo, ffo_margin,
		cash_and_equivalents, cash_and_short_term_investments,
		total_investments, gross_loans, accounts_receivable, inventory,
		total_current_assets, goodwill, total_assets, accounts_payable,
		total_current_liabilities, total_liabilities, retained_earnings,
		shareholders_equity, total_debt, net_cash,
		depreciation_and_amortization, stock_based_compensation,
		operating_cash_flow, operating_cash_flow_margin, capital_expenditure,
		investing_cash_flow, financing_cash_flow, free_cash_flow,
		free_cash_flow_margin,
		ratio_calculated, growth_calculated
	) VALUES (
		$1, $2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11,
		$12, $13, $14, $15, $16, $17,
		$18, $19, $20, $21,
		$22, $23, $24, $25, $26,
		$27, $28, $29,
		$30, $31, $32, $33, $34,
		$35, $36,
		$37, $38, $39, $40, $41, $42, $43, $44, $45, $46, $47, $48, $49,
		$50, $51, $52,
		$53, $54, $55, $56, $57, $58, $59, $60, $61,
		$62, $63
	)
	ON CONFLICT (company_id, duration, quarter_str, year_str) DO NOTHING`

func insertArgs(r models.EarningsReport) []any {
	return []any{
		r.CompanyID, r.Duration, r.QuarterStr, r.YearStr, r.PeriodEnding, r.Currency,
		r.NetInterestIncome, r.NetInterestGrowthYoY, r.NetInterestMargin,
		r.ProvisionForLoanLoss, r.CostOfRisk,
		r.Revenue, r.RevenueGrowthYoY, r.CostOfRevenue, r.GrossProfit,
		r.GrossMargin, r.GrossProfitGrowthYoY,
		r.SgaExpenses, r.SgaGpRatio, r.RndExpenses, r.RndGpRatio,
		r.OperatingExpenses, r.OperatingIncome, r.OperatingMargin,
		r.InterestExpenses, r.InterestExpensesOpIncomeRatio,
		r.GoodwillImpairment, r.NetIncome, r.NetMargin,
		r.EpsBasic, r.EpsDiluted, r.SharesOutstandingBasic,
		r.SharesOutstandingDiluted, r.SharesChangeYoY,
		r.Ffo, r.FfoMargin,
		r.CashAndEquivalents, r.CashAndShortTermInvestments,
		r.TotalInvestments, r.GrossLoans, r.AccountsReceivable, r.Inventory,
		r.TotalCurrentAssets, r.Goodwill, r.TotalAssets, r.AccountsPayable,
		r.TotalCurrentLiabilities, r.TotalLiabilities, r.RetainedEarnings,
		r.ShareholdersEquity, r.TotalDebt, r.NetCash,
		r.DepreciationAndAmortization, r.StockBasedCompensation,
		r.OperatingCashFlow, r.OperatingCashFlowMargin, r.CapitalExpenditure,
		r.InvestingCashFlow, r.FinancingCashFlow, r.FreeCashFlow,
		r.FreeCashFlowMargin,
		r.RatioCalculated, r.GrowthCalculated,
	}
}

func scanEarnings(row pgx.Row) (*models.EarningsReport, error) {
	var r models.EarningsReport
	err := row.Scan(
		&r.ID, &r.CompanyID, &r.Duration, &r.QuarterStr, &r.YearStr, &r.PeriodEnding, &r.Currency,
		&r.NetInterestIncome, &r.NetInterestGrowthYoY, &r.NetInterestMargin,
		&r.ProvisionForLoanLoss, &r.CostOfRisk,
		&r.Revenue, &r.RevenueGrowthYoY, &r.CostOfRevenue, &r.GrossProfit,
		&r.GrossMargin, &r.GrossProfitGrowthYoY,
		&r.SgaExpenses, &r.SgaGpRatio, &r.RndExpenses, &r.RndGpRatio,
		&r.OperatingExpenses, &r.OperatingIncome, &r.OperatingMargin,
		&r.InterestExpenses, &r.InterestExpensesOpIncomeRatio,
		&r.GoodwillImpairment, &r.NetIncome, &r.NetMargin,
		&r.EpsBasic, &r.EpsDiluted, &r.SharesOutstandingBasic,
		&r.SharesOutstandingDiluted, &r.SharesChangeYoY,
		&r.Ffo, &r.FfoMargin,
		&r.CashAndEquivalents, &r.CashAndShortTermInvestments,
		&r.TotalInvestments, &r.GrossLoans, &r.AccountsReceivable, &r.Inventory,
		&r.TotalCurrentAssets, &r.Goodwill, &r.TotalAssets, &r.AccountsPayable,
		&r.TotalCurrentLiabilities, &r.TotalLiabilities, &r.RetainedEarnings,
		&r.ShareholdersEquity, &r.TotalDebt, &r.NetCash,
		&r.DepreciationAndAmortization, &r.StockBasedCompensation,
		&r.OperatingCashFlow, &r.OperatingCashFlowMargin, &r.CapitalExpenditure,
		&r.InvestingCashFlow, &r.FinancingCashFlow, &r.FreeCashFlow,
		&r.FreeCashFlowMargin,
		&r.RatioCalculated, &r.GrowthCalculated,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// InsertBatch inserts canonical reports, silently dropping rows whose
// composite period key already exists. Returns true iff at least one row
// was newly inserted; a full-conflict batch is not an error.
func (r *EarningsRepository) InsertBatch(ctx context.Context, reports []models.EarningsReport) (bool, error) {
	if len(reports) == 0 {
		return false, nil
	}

	batch := &pgx.Batch{}
	for _, report := range reports {
		batch.Queue(insertEarnings, insertArgs(report)...)
	}

	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()

	var inserted int64
	for range reports {
		ct, err := br.Exec()
		if err != nil {
			return inserted > 0, fmt.Errorf("inserting earnings report: %w", err)
		}
		inserted += ct.RowsAffected()
	}
	return inserted > 0, nil
}

// LatestQuarter returns the most recent TTM report for the company, or
// ErrNotFound when the company has no TTM history.
func (r *EarningsRepository) LatestQuarter(ctx context.Context, companyID int) (*models.EarningsReport, error) {
	return r.latestByDuration(ctx, companyID, models.DurationTTM)
}

// LatestQuarterIfExists is LatestQuarter with the miss recovered to nil.
func (r *EarningsRepository) LatestQuarterIfExists(ctx context.Context, companyID int) (*models.EarningsReport, error) {
	report, err := r.LatestQuarter(ctx, companyID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return report, err
}

// LatestAnnual returns the most recent annual report for the company.
func (r *EarningsRepository) LatestAnnual(ctx context.Context, companyID int) (*models.EarningsReport, error) {
	return r.latestByDuration(ctx, companyID, models.DurationAnnual)
}

func (r *EarningsRepository) latestByDuration(ctx context.Context, companyID int, duration string) (*models.EarningsReport, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+earningsColumns+`
		FROM earnings_report
		WHERE company_id = $1 AND duration = $2
		ORDER BY year_str DESC, quarter_str DESC
		LIMIT 1
	`, companyID, duration)

	report, err := scanEarnings(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading latest %s report: %w", duration, err)
	}
	return report, nil
}

// LoadByCompany returns every report for the company ordered newest first
// by (year_str, quarter_str).
func (r *EarningsRepository) LoadByCompany(ctx context.Context, companyID int) ([]*models.EarningsReport, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+earningsColumns+`
		FROM earnings_report
		WHERE company_id = $1
		ORDER BY year_str DESC, quarter_str DESC
	`, companyID)
	if err != nil {
		return nil, fmt.Errorf("loading company reports: %w", err)
	}
	defer rows.Close()
	return collectEarnings(rows)
}

// LoadByCompanyDuration returns the company's reports of one duration,
// newest first.
func (r *EarningsRepository) LoadByCompanyDuration(ctx context.Context, companyID int, duration string) ([]*models.EarningsReport, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+earningsColumns+`
		FROM earnings_report
		WHERE company_id = $1 AND duration = $2
		ORDER BY year_str DESC, quarter_str DESC
	`, companyID, duration)
	if err != nil {
		return nil, fmt.Errorf("loading company %s reports: %w", duration, err)
	}
	defer rows.Close()
	return collectEarnings(rows)
}

func collectEarnings(rows pgx.Rows) ([]*models.EarningsReport, error) {
	var reports []*models.EarningsReport
	for rows.Next() {
		report, err := scanEarnings(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning earnings report: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

// SameQuarterPrevYear returns the company's matching-quarter report from
// the prior fiscal year, or nil when no comparison period exists.
func (r *EarningsRepository) SameQuarterPrevYear(ctx context.Context, report *models.EarningsReport) (*models.EarningsReport, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+earningsColumns+`
		FROM earnings_report
		WHERE company_id = $1 AND duration = $2 AND quarter_str = $3 AND year_str = $4
	`, report.CompanyID, report.Duration, report.QuarterStr, report.YearStr-1)

	prev, err := scanEarnings(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading prior-year report: %w", err)
	}
	return prev, nil
}

// UpdateRatios writes the derived ratio fields and marks the report as
// ratio-calculated. Only derived columns are touched; the period key is
// immutable.
func (r *EarningsRepository) UpdateRatios(ctx context.Context, id int64, u models.RatioUpdate) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE earnings_report SET
			net_interest_margin = $2,
			cost_of_risk = $3,
			sga_gp_ratio = $4,
			rnd_gp_ratio = $5,
			interest_expenses_op_income_ratio = $6,
			operating_margin = $7,
			net_margin = $8,
			ffo_margin = $9,
			operating_cash_flow_margin = $10,
			ratio_calculated = TRUE
		WHERE id = $1
	`, id,
		u.NetInterestMargin, u.CostOfRisk, u.SgaGpRatio, u.RndGpRatio,
		u.InterestExpensesOpIncomeRatio, u.OperatingMargin, u.NetMargin,
		u.FfoMargin, u.OperatingCashFlowMargin,
	)
	if err != nil {
		return fmt.Errorf("updating ratios: %w", err)
	}
	return nil
}

// UpdateGrowth writes the derived YoY growth fields and marks the report
// as growth-calculated.
func (r *EarningsRepository) UpdateGrowth(ctx context.Context, id int64, u models.GrowthUpdate) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE earnings_report SET
			net_interest_growth_yoy = $2,
			gross_profit_growth_yoy = $3,
			growth_calculated = TRUE
		WHERE id = $1
	`, id, u.NetInterestGrowthYoY, u.GrossProfitGrowthYoY)
	if err != nil {
		return fmt.Errorf("updating growth: %w", err)
	}
	return nil
}
