package models

import "time"

// Durations stored in the duration column of earnings_report.
const (
	DurationTTM    = "T" // trailing-twelve-month / quarterly statements
	DurationAnnual = "Y" // full-year statements
)

// EarningsReport is the canonical company-period financial statement every
// provider variant is normalized into. A row is uniquely identified by
// (CompanyID, Duration, QuarterStr, YearStr); that tuple never changes after
// insert. Optional fields are nil when the concept does not apply to the
// statement type (a bank has no gross profit, only a REIT reports FFO).
// Derived ratio/margin/growth fields stay nil until the metrics engine
// populates them and flips the matching bookkeeping flag.
type EarningsReport struct {
	ID           int64     `json:"id"`
	CompanyID    int       `json:"company_id"`
	Duration     string    `json:"duration"`
	QuarterStr   int       `json:"quarter_str"`
	YearStr      int       `json:"year_str"`
	PeriodEnding time.Time `json:"period_ending"`
	Currency     string    `json:"currency"`

	NetInterestIncome    *float64 `json:"net_interest_income"`
	NetInterestGrowthYoY *float64 `json:"net_interest_growth_yoy"`
	NetInterestMargin    *float64 `json:"net_interest_margin"`
	ProvisionForLoanLoss *float64 `json:"provision_for_loan_loss"`
	CostOfRisk           *float64 `json:"cost_of_risk"`

	Revenue              float64  `json:"revenue"`
	RevenueGrowthYoY     *float64 `json:"revenue_growth_yoy"`
	CostOfRevenue        *float64 `json:"cost_of_revenue"`
	GrossProfit          *float64 `json:"gross_profit"`
	GrossMargin          *float64 `json:"gross_margin"`
	GrossProfitGrowthYoY *float64 `json:"gross_profit_growth_yoy"`

	SgaExpenses *float64 `json:"sga_expenses"`
	SgaGpRatio  *float64 `json:"sga_gp_ratio"`
	RndExpenses *float64 `json:"rnd_expenses"`
	RndGpRatio  *float64 `json:"rnd_gp_ratio"`

	OperatingExpenses             float64  `json:"operating_expenses"`
	OperatingIncome               float64  `json:"operating_income"`
	OperatingMargin               float64  `json:"operating_margin"`
	InterestExpenses              *float64 `json:"interest_expenses"`
	InterestExpensesOpIncomeRatio *float64 `json:"interest_expenses_op_income_ratio"`

	GoodwillImpairment float64 `json:"goodwill_impairment"`
	NetIncome          float64 `json:"net_income"`
	NetMargin          float64 `json:"net_margin"`

	EpsBasic                 float64 `json:"eps_basic"`
	EpsDiluted               float64 `json:"eps_diluted"`
	SharesOutstandingBasic   float64 `json:"shares_outstanding_basic"`
	SharesOutstandingDiluted float64 `json:"shares_outstanding_diluted"`
	SharesChangeYoY          float64 `json:"shares_change_yoy"`

	Ffo       *float64 `json:"ffo"`
	FfoMargin *float64 `json:"ffo_margin"`

	CashAndEquivalents          float64  `json:"cash_and_equivalents"`
	CashAndShortTermInvestments *float64 `json:"cash_and_short_term_investments"`
	TotalInvestments            *float64 `json:"total_investments"`
	GrossLoans                  *float64 `json:"gross_loans"`
	AccountsReceivable          *float64 `json:"accounts_receivable"`
	Inventory                   *float64 `json:"inventory"`
	TotalCurrentAssets          *float64 `json:"total_current_assets"`
	Goodwill                    *float64 `json:"goodwill"`
	TotalAssets                 float64  `json:"total_assets"`
	AccountsPayable             *float64 `json:"accounts_payable"`
	TotalCurrentLiabilities     *float64 `json:"total_current_liabilities"`
	TotalLiabilities            float64  `json:"total_liabilities"`
	RetainedEarnings            float64  `json:"retained_earnings"`
	ShareholdersEquity          float64  `json:"shareholders_equity"`
	TotalDebt                   *float64 `json:"total_debt"`
	NetCash                     float64  `json:"net_cash"`

	DepreciationAndAmortization *float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation      *float64 `json:"stock_based_compensation"`
	OperatingCashFlow           *float64 `json:"operating_cash_flow"`
	OperatingCashFlowMargin     *float64 `json:"operating_cash_flow_margin"`
	CapitalExpenditure          *float64 `json:"capital_expenditure"`
	InvestingCashFlow           *float64 `json:"investing_cash_flow"`
	FinancingCashFlow           *float64 `json:"financing_cash_flow"`
	FreeCashFlow                *float64 `json:"free_cash_flow"`
	FreeCashFlowMargin          *float64 `json:"free_cash_flow_margin"`

	RatioCalculated  bool `json:"ratio_calculated"`
	GrowthCalculated bool `json:"growth_calculated"`
}

// RatioUpdate carries the derived ratio/margin fields written back to a
// stored report in one targeted partial update.
type RatioUpdate struct {
	NetInterestMargin             *float64
	CostOfRisk                    *float64
	SgaGpRatio                    *float64
	RndGpRatio                    *float64
	InterestExpensesOpIncomeRatio *float64
	OperatingMargin               float64
	NetMargin                     float64
	FfoMargin                     *float64
	OperatingCashFlowMargin       *float64
}

// GrowthUpdate carries the derived year-over-year growth fields.
type GrowthUpdate struct {
	NetInterestGrowthYoY *float64
	GrossProfitGrowthYoY *float64
}
