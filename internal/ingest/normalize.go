package ingest

import (
	"fmt"

	"earnings-screener/internal/models"
)

// Normalize maps one raw statement batch into canonical earnings reports.
// Statements with an unparseable fiscal period are dropped silently, so the
// result may be shorter than the input. A malformed period-ending date is a
// hard error and aborts the whole batch: a payload with broken dates is
// corrupt, not merely sparse.
func Normalize(b Batch) ([]models.EarningsReport, error) {
	var (
		reports []models.EarningsReport
		err     error
	)
	switch b.Kind {
	case KindNominal:
		for _, s := range b.Nominal {
			var r *models.EarningsReport
			if r, err = normalizeNominal(b.CompanyID, b.Currency, s); err != nil {
				return nil, err
			}
			if r != nil {
				reports = append(reports, *r)
			}
		}
	case KindBank:
		for _, s := range b.Bank {
			var r *models.EarningsReport
			if r, err = normalizeBank(b.CompanyID, b.Currency, s); err != nil {
				return nil, err
			}
			if r != nil {
				reports = append(reports, *r)
			}
		}
	case KindReit:
		for _, s := range b.Reit {
			var r *models.EarningsReport
			if r, err = normalizeReit(b.CompanyID, b.Currency, s); err != nil {
				return nil, err
			}
			if r != nil {
				reports = append(reports, *r)
			}
		}
	case KindOther:
		for _, s := range b.Other {
			var r *models.EarningsReport
			if r, err = normalizeOther(b.CompanyID, b.Currency, s); err != nil {
				return nil, err
			}
			if r != nil {
				reports = append(reports, *r)
			}
		}
	default:
		return nil, fmt.Errorf("unknown statement kind: %q", b.Kind)
	}
	return reports, nil
}

// normalizeNominal maps a nominal statement. Returns (nil, nil) when the
// fiscal period does not parse.
func normalizeNominal(companyID int, currency string, s NominalStatement) (*models.EarningsReport, error) {
	year, quarter, ok := ParseFiscalPeriod(s.FiscalQuarter)
	if !ok {
		return nil, nil
	}
	ending, err := ParsePeriodEnding(s.PeriodEnding)
	if err != nil {
		return nil, err
	}
	return &models.EarningsReport{
		CompanyID:    companyID,
		Duration:     s.Term,
		QuarterStr:   quarter,
		YearStr:      year,
		PeriodEnding: ending,
		Currency:     currency,

		Revenue:          s.Revenue,
		RevenueGrowthYoY: ptr(s.RevenueGrowthYoY),
		CostOfRevenue:    ptr(s.CostOfRevenue),
		GrossProfit:      ptr(s.GrossProfit),
		GrossMargin:      ptr(s.GrossMargin),
		SgaExpenses:      ptr(s.SgaExpenses),
		RndExpenses:      ptr(s.RndExpenses),

		OperatingExpenses:  s.OperatingExpenses,
		OperatingIncome:    s.OperatingIncome,
		OperatingMargin:    s.OperatingMargin,
		InterestExpenses:   ptr(s.InterestExpenses),
		GoodwillImpairment: s.GoodwillImpairment,
		NetIncome:          s.NetIncome,
		NetMargin:          s.NetMargin,

		EpsBasic:                 s.EpsBasic,
		EpsDiluted:               s.EpsDiluted,
		SharesOutstandingBasic:   s.SharesOutstandingBasic,
		SharesOutstandingDiluted: s.SharesOutstandingDiluted,
		SharesChangeYoY:          s.SharesChangeYoY,

		CashAndEquivalents:          s.CashAndEquivalents,
		CashAndShortTermInvestments: ptr(s.CashAndShortTermInvestments),
		AccountsReceivable:          ptr(s.AccountsReceivable),
		Inventory:                   ptr(s.Inventory),
		TotalCurrentAssets:          ptr(s.TotalCurrentAssets),
		Goodwill:                    ptr(s.Goodwill),
		TotalAssets:                 s.TotalAssets,
		AccountsPayable:             ptr(s.AccountsPayable),
		TotalCurrentLiabilities:     ptr(s.TotalCurrentLiabilities),
		TotalLiabilities:            s.TotalLiabilities,
		RetainedEarnings:            s.RetainedEarnings,
		ShareholdersEquity:          s.ShareholdersEquity,
		TotalDebt:                   ptr(s.TotalDebt),
		NetCash:                     s.NetCash,

		DepreciationAndAmortization: ptr(s.DepreciationAndAmortization),
		StockBasedCompensation:      ptr(s.StockBasedCompensation),
		OperatingCashFlow:           ptr(s.OperatingCashFlow),
		CapitalExpenditure:          ptr(s.CapitalExpenditure),
		InvestingCashFlow:           ptr(s.InvestingCashFlow),
		FinancingCashFlow:           ptr(s.FinancingCashFlow),
		FreeCashFlow:                ptr(s.FreeCashFlow),
		FreeCashFlowMargin:          ptr(s.FreeCashFlowMargin),
	}, nil
}

func normalizeBank(companyID int, currency string, s BankStatement) (*models.EarningsReport, error) {
	year, quarter, ok := ParseFiscalPeriod(s.FiscalQuarter)
	if !ok {
		return nil, nil
	}
	ending, err := ParsePeriodEnding(s.PeriodEnding)
	if err != nil {
		return nil, err
	}
	return &models.EarningsReport{
		CompanyID:    companyID,
		Duration:     s.Term,
		QuarterStr:   quarter,
		YearStr:      year,
		PeriodEnding: ending,
		Currency:     currency,

		NetInterestIncome:    ptr(s.NetInterestIncome),
		ProvisionForLoanLoss: ptr(s.ProvisionForLoanLoss),

		Revenue:          s.Revenue,
		RevenueGrowthYoY: ptr(s.RevenueGrowthYoY),

		OperatingExpenses:  s.OperatingExpenses,
		OperatingIncome:    s.AdjustedOperatingIncome,
		OperatingMargin:    s.AdjustedOperatingMargin,
		GoodwillImpairment: s.GoodwillImpairment,
		NetIncome:          s.NetIncome,
		NetMargin:          s.NetMargin,

		EpsBasic:                 s.EpsBasic,
		EpsDiluted:               s.EpsDiluted,
		SharesOutstandingBasic:   s.SharesOutstandingBasic,
		SharesOutstandingDiluted: s.SharesOutstandingDiluted,
		SharesChangeYoY:          s.SharesChangeYoY,

		CashAndEquivalents: s.CashAndEquivalents,
		TotalInvestments:   ptr(s.TotalInvestments),
		GrossLoans:         ptr(s.GrossLoans),
		Goodwill:           ptr(s.Goodwill),
		TotalAssets:        s.TotalAssets,
		TotalLiabilities:   s.TotalLiabilities,
		RetainedEarnings:   s.RetainedEarnings,
		ShareholdersEquity: s.ShareholdersEquity,
		TotalDebt:          ptr(s.TotalDebt),
		NetCash:            s.NetCash,

		DepreciationAndAmortization: ptr(s.DepreciationAndAmortization),
		StockBasedCompensation:      ptr(s.StockBasedCompensation),
		OperatingCashFlow:           ptr(s.OperatingCashFlow),
		InvestingCashFlow:           ptr(s.InvestingCashFlow),
		FinancingCashFlow:           ptr(s.FinancingCashFlow),
	}, nil
}

func normalizeReit(companyID int, currency string, s ReitStatement) (*models.EarningsReport, error) {
	year, quarter, ok := ParseFiscalPeriod(s.FiscalQuarter)
	if !ok {
		return nil, nil
	}
	ending, err := ParsePeriodEnding(s.PeriodEnding)
	if err != nil {
		return nil, err
	}
	return &models.EarningsReport{
		CompanyID:    companyID,
		Duration:     s.Term,
		QuarterStr:   quarter,
		YearStr:      year,
		PeriodEnding: ending,
		Currency:     currency,

		Revenue:          s.Revenue,
		RevenueGrowthYoY: ptr(s.RevenueGrowthYoY),

		OperatingExpenses:  s.OperatingExpenses,
		OperatingIncome:    s.OperatingIncome,
		OperatingMargin:    s.OperatingMargin,
		InterestExpenses:   ptr(s.InterestExpenses),
		GoodwillImpairment: s.GoodwillImpairment,
		NetIncome:          s.NetIncome,
		NetMargin:          s.NetMargin,

		EpsBasic:                 s.EpsBasic,
		EpsDiluted:               s.EpsDiluted,
		SharesOutstandingBasic:   s.SharesOutstandingBasic,
		SharesOutstandingDiluted: s.SharesOutstandingDiluted,
		SharesChangeYoY:          s.SharesChangeYoY,

		Ffo: ptr(s.Ffo),

		CashAndEquivalents: s.CashAndEquivalents,
		Goodwill:           ptr(s.Goodwill),
		TotalAssets:        s.TotalAssets,
		TotalLiabilities:   s.TotalLiabilities,
		RetainedEarnings:   s.RetainedEarnings,
		ShareholdersEquity: s.ShareholdersEquity,
		TotalDebt:          ptr(s.TotalDebt),
		NetCash:            s.NetCash,

		DepreciationAndAmortization: ptr(s.DepreciationAndAmortization),
		StockBasedCompensation:      ptr(s.StockBasedCompensation),
		OperatingCashFlow:           ptr(s.OperatingCashFlow),
	}, nil
}

func normalizeOther(companyID int, currency string, s OtherStatement) (*models.EarningsReport, error) {
	year, quarter, ok := ParseFiscalPeriod(s.FiscalQuarter)
	if !ok {
		return nil, nil
	}
	ending, err := ParsePeriodEnding(s.PeriodEnding)
	if err != nil {
		return nil, err
	}
	return &models.EarningsReport{
		CompanyID:    companyID,
		Duration:     s.Term,
		QuarterStr:   quarter,
		YearStr:      year,
		PeriodEnding: ending,
		Currency:     currency,

		Revenue:          s.Revenue,
		RevenueGrowthYoY: ptr(s.RevenueGrowthYoY),

		OperatingExpenses:  s.OperatingExpenses,
		OperatingIncome:    s.OperatingIncome,
		OperatingMargin:    s.OperatingMargin,
		InterestExpenses:   ptr(s.InterestExpenses),
		GoodwillImpairment: s.GoodwillImpairment,
		NetIncome:          s.NetIncome,
		NetMargin:          s.NetMargin,

		EpsBasic:                 s.EpsBasic,
		EpsDiluted:               s.EpsDiluted,
		SharesOutstandingBasic:   s.SharesOutstandingBasic,
		SharesOutstandingDiluted: s.SharesOutstandingDiluted,
		SharesChangeYoY:          s.SharesChangeYoY,

		CashAndEquivalents: s.CashAndEquivalents,
		Goodwill:           ptr(s.Goodwill),
		TotalAssets:        s.TotalAssets,
		TotalLiabilities:   s.TotalLiabilities,
		RetainedEarnings:   s.RetainedEarnings,
		ShareholdersEquity: s.ShareholdersEquity,
		TotalDebt:          ptr(s.TotalDebt),
		NetCash:            s.NetCash,

		DepreciationAndAmortization: ptr(s.DepreciationAndAmortization),
		StockBasedCompensation:      ptr(s.StockBasedCompensation),
		OperatingCashFlow:           ptr(s.OperatingCashFlow),
		InvestingCashFlow:           ptr(s.InvestingCashFlow),
		FinancingCashFlow:           ptr(s.FinancingCashFlow),
		FreeCashFlow:                ptr(s.FreeCashFlow),
		FreeCashFlowMargin:          ptr(s.FreeCashFlowMargin),
	}, nil
}

func ptr(v float64) *float64 {
	return &v
}
