package ingest

// Kind tags which statement variant a raw batch carries. Providers report
// different field sets per company type, so each kind has its own row shape.
type Kind string

const (
	KindNominal Kind = "nominal"
	KindBank    Kind = "bank"
	KindReit    Kind = "reit"
	KindOther   Kind = "other"
)

// Batch is one already-fetched raw statement payload for a single company.
// Exactly one of the variant slices is populated, selected by Kind.
type Batch struct {
	Kind      Kind   `json:"kind"`
	CompanyID int    `json:"company_id"`
	Currency  string `json:"currency"`

	Nominal []NominalStatement `json:"nominal,omitempty"`
	Bank    []BankStatement    `json:"bank,omitempty"`
	Reit    []ReitStatement    `json:"reit,omitempty"`
	Other   []OtherStatement   `json:"other,omitempty"`
}

// NominalStatement is the provider row for a regular operating company. It
// carries the full gross-profit section plus current asset/liability splits.
type NominalStatement struct {
	FiscalQuarter string `json:"fiscal_quarter"`
	Term          string `json:"term"` // "T" or "Y"
	PeriodEnding  string `json:"period_ending"`

	Revenue            float64 `json:"revenue"`
	RevenueGrowthYoY   float64 `json:"revenue_growth_yoy"`
	CostOfRevenue      float64 `json:"cost_of_revenue"`
	GrossProfit        float64 `json:"gross_profit"`
	GrossMargin        float64 `json:"gross_margin"`
	SgaExpenses        float64 `json:"sga_expenses"`
	RndExpenses        float64 `json:"rnd_expenses"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	OperatingIncome    float64 `json:"operating_income"`
	OperatingMargin    float64 `json:"operating_margin"`
	InterestExpenses   float64 `json:"interest_expenses"`
	GoodwillImpairment float64 `json:"goodwill_impairment"`
	NetIncome          float64 `json:"net_income"`
	NetMargin          float64 `json:"net_margin"`

	EpsBasic                 float64 `json:"eps_basic"`
	EpsDiluted               float64 `json:"eps_diluted"`
	SharesOutstandingBasic   float64 `json:"shares_outstanding_basic"`
	SharesOutstandingDiluted float64 `json:"shares_outstanding_diluted"`
	SharesChangeYoY          float64 `json:"shares_change_yoy"`

	CashAndEquivalents          float64 `json:"cash_and_equivalents"`
	CashAndShortTermInvestments float64 `json:"cash_and_short_term_investments"`
	AccountsReceivable          float64 `json:"accounts_receivable"`
	Inventory                   float64 `json:"inventory"`
	TotalCurrentAssets          float64 `json:"total_current_assets"`
	Goodwill                    float64 `json:"goodwill"`
	TotalAssets                 float64 `json:"total_assets"`
	AccountsPayable             float64 `json:"accounts_payable"`
	TotalCurrentLiabilities     float64 `json:"total_current_liabilities"`
	TotalLiabilities            float64 `json:"total_liabilities"`
	RetainedEarnings            float64 `json:"retained_earnings"`
	ShareholdersEquity          float64 `json:"shareholders_equity"`
	TotalDebt                   float64 `json:"total_debt"`
	NetCash                     float64 `json:"net_cash"`

	DepreciationAndAmortization float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation      float64 `json:"stock_based_compensation"`
	OperatingCashFlow           float64 `json:"operating_cash_flow"`
	CapitalExpenditure          float64 `json:"capital_expenditure"`
	InvestingCashFlow           float64 `json:"investing_cash_flow"`
	FinancingCashFlow           float64 `json:"financing_cash_flow"`
	FreeCashFlow                float64 `json:"free_cash_flow"`
	FreeCashFlowMargin          float64 `json:"free_cash_flow_margin"`
}

// BankStatement replaces the gross-profit section with interest-income
// fields and reports investments and loan books instead of inventory.
type BankStatement struct {
	FiscalQuarter string `json:"fiscal_quarter"`
	Term          string `json:"term"`
	PeriodEnding  string `json:"period_ending"`

	NetInterestIncome    float64 `json:"net_interest_income"`
	ProvisionForLoanLoss float64 `json:"provision_for_loan_loss"`

	Revenue                 float64 `json:"revenue"`
	RevenueGrowthYoY        float64 `json:"revenue_growth_yoy"`
	OperatingExpenses       float64 `json:"operating_expenses"`
	AdjustedOperatingIncome float64 `json:"adjusted_operating_income"`
	AdjustedOperatingMargin float64 `json:"adjusted_operating_margin"`
	GoodwillImpairment      float64 `json:"goodwill_impairment"`
	NetIncome               float64 `json:"net_income"`
	NetMargin               float64 `json:"net_margin"`

	EpsBasic                 float64 `json:"eps_basic"`
	EpsDiluted               float64 `json:"eps_diluted"`
	SharesOutstandingBasic   float64 `json:"shares_outstanding_basic"`
	SharesOutstandingDiluted float64 `json:"shares_outstanding_diluted"`
	SharesChangeYoY          float64 `json:"shares_change_yoy"`

	CashAndEquivalents float64 `json:"cash_and_equivalents"`
	TotalInvestments   float64 `json:"total_investments"`
	GrossLoans         float64 `json:"gross_loans"`
	Goodwill           float64 `json:"goodwill"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	RetainedEarnings   float64 `json:"retained_earnings"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	TotalDebt          float64 `json:"total_debt"`
	NetCash            float64 `json:"net_cash"`

	DepreciationAndAmortization float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation      float64 `json:"stock_based_compensation"`
	OperatingCashFlow           float64 `json:"operating_cash_flow"`
	InvestingCashFlow           float64 `json:"investing_cash_flow"`
	FinancingCashFlow           float64 `json:"financing_cash_flow"`
}

// ReitStatement adds funds-from-operations on top of the common income
// fields; REITs report no gross-profit section or current splits.
type ReitStatement struct {
	FiscalQuarter string `json:"fiscal_quarter"`
	Term          string `json:"term"`
	PeriodEnding  string `json:"period_ending"`

	Revenue            float64 `json:"revenue"`
	RevenueGrowthYoY   float64 `json:"revenue_growth_yoy"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	OperatingIncome    float64 `json:"operating_income"`
	OperatingMargin    float64 `json:"operating_margin"`
	InterestExpenses   float64 `json:"interest_expenses"`
	GoodwillImpairment float64 `json:"goodwill_impairment"`
	NetIncome          float64 `json:"net_income"`
	NetMargin          float64 `json:"net_margin"`

	EpsBasic                 float64 `json:"eps_basic"`
	EpsDiluted               float64 `json:"eps_diluted"`
	SharesOutstandingBasic   float64 `json:"shares_outstanding_basic"`
	SharesOutstandingDiluted float64 `json:"shares_outstanding_diluted"`
	SharesChangeYoY          float64 `json:"shares_change_yoy"`

	Ffo float64 `json:"ffo"`

	CashAndEquivalents float64 `json:"cash_and_equivalents"`
	Goodwill           float64 `json:"goodwill"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	RetainedEarnings   float64 `json:"retained_earnings"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	TotalDebt          float64 `json:"total_debt"`
	NetCash            float64 `json:"net_cash"`

	DepreciationAndAmortization float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation      float64 `json:"stock_based_compensation"`
	OperatingCashFlow           float64 `json:"operating_cash_flow"`
}

// OtherStatement covers companies that fit none of the above: common income
// fields plus full cash-flow reporting, without a gross-profit section.
type OtherStatement struct {
	FiscalQuarter string `json:"fiscal_quarter"`
	Term          string `json:"term"`
	PeriodEnding  string `json:"period_ending"`

	Revenue            float64 `json:"revenue"`
	RevenueGrowthYoY   float64 `json:"revenue_growth_yoy"`
	OperatingExpenses  float64 `json:"operating_expenses"`
	OperatingIncome    float64 `json:"operating_income"`
	OperatingMargin    float64 `json:"operating_margin"`
	InterestExpenses   float64 `json:"interest_expenses"`
	GoodwillImpairment float64 `json:"goodwill_impairment"`
	NetIncome          float64 `json:"net_income"`
	NetMargin          float64 `json:"net_margin"`

	EpsBasic                 float64 `json:"eps_basic"`
	EpsDiluted               float64 `json:"eps_diluted"`
	SharesOutstandingBasic   float64 `json:"shares_outstanding_basic"`
	SharesOutstandingDiluted float64 `json:"shares_outstanding_diluted"`
	SharesChangeYoY          float64 `json:"shares_change_yoy"`

	CashAndEquivalents float64 `json:"cash_and_equivalents"`
	Goodwill           float64 `json:"goodwill"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	RetainedEarnings   float64 `json:"retained_earnings"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	TotalDebt          float64 `json:"total_debt"`
	NetCash            float64 `json:"net_cash"`

	DepreciationAndAmortization float64 `json:"depreciation_and_amortization"`
	StockBasedCompensation      float64 `json:"stock_based_compensation"`
	OperatingCashFlow           float64 `json:"operating_cash_flow"`
	InvestingCashFlow           float64 `json:"investing_cash_flow"`
	FinancingCashFlow           float64 `json:"financing_cash_flow"`
	FreeCashFlow                float64 `json:"free_cash_flow"`
	FreeCashFlowMargin          float64 `json:"free_cash_flow_margin"`
}
