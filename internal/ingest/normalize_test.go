package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"earnings-screener/internal/models"
)

func TestNormalizeNominal(t *testing.T) {
	batch := Batch{
		Kind:      KindNominal,
		CompanyID: 7,
		Currency:  "USD",
		Nominal: []NominalStatement{{
			FiscalQuarter: "2024-Q2",
			Term:          models.DurationTTM,
			PeriodEnding:  "2024-06-30",
			Revenue:       1000,
			GrossProfit:   400,
			GrossMargin:   40,
			SgaExpenses:   120,
			RndExpenses:   80,
			NetIncome:     150,
			NetMargin:     15,
			TotalAssets:   5000,
			NetCash:       200,
			FreeCashFlow:  180,
		}},
	}

	reports, err := Normalize(batch)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	assert.Equal(t, 7, r.CompanyID)
	assert.Equal(t, models.DurationTTM, r.Duration)
	assert.Equal(t, 2, r.QuarterStr)
	assert.Equal(t, 2024, r.YearStr)
	assert.Equal(t, "USD", r.Currency)
	assert.Equal(t, 1000.0, r.Revenue)
	require.NotNil(t, r.GrossProfit)
	assert.Equal(t, 400.0, *r.GrossProfit)
	require.NotNil(t, r.FreeCashFlow)
	assert.Equal(t, 180.0, *r.FreeCashFlow)

	// Bank- and REIT-only concepts stay absent on a nominal company.
	assert.Nil(t, r.NetInterestIncome)
	assert.Nil(t, r.GrossLoans)
	assert.Nil(t, r.Ffo)

	// Derived fields are the deriver's job.
	assert.False(t, r.RatioCalculated)
	assert.False(t, r.GrowthCalculated)
}

func TestNormalizeBank(t *testing.T) {
	batch := Batch{
		Kind:      KindBank,
		CompanyID: 11,
		Currency:  "EUR",
		Bank: []BankStatement{{
			FiscalQuarter:           "2023-Q4",
			Term:                    models.DurationAnnual,
			PeriodEnding:            "2023-12-31",
			NetInterestIncome:       900,
			ProvisionForLoanLoss:    50,
			Revenue:                 1200,
			AdjustedOperatingIncome: 500,
			AdjustedOperatingMargin: 41.67,
			TotalInvestments:        8000,
			GrossLoans:              12000,
		}},
	}

	reports, err := Normalize(batch)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	require.NotNil(t, r.NetInterestIncome)
	assert.Equal(t, 900.0, *r.NetInterestIncome)
	require.NotNil(t, r.GrossLoans)
	assert.Equal(t, 12000.0, *r.GrossLoans)

	// Adjusted figures land in the shared operating columns.
	assert.Equal(t, 500.0, r.OperatingIncome)
	assert.Equal(t, 41.67, r.OperatingMargin)

	assert.Nil(t, r.GrossProfit)
	assert.Nil(t, r.Inventory)
	assert.Nil(t, r.FreeCashFlow)
}

func TestNormalizeReit(t *testing.T) {
	batch := Batch{
		Kind:      KindReit,
		CompanyID: 3,
		Currency:  "USD",
		Reit: []ReitStatement{{
			FiscalQuarter: "2024-Q1",
			Term:          models.DurationTTM,
			PeriodEnding:  "Mar 31, 2024",
			Revenue:       600,
			Ffo:           250,
		}},
	}

	reports, err := Normalize(batch)
	require.NoError(t, err)
	require.Len(t, reports, 1)

	r := reports[0]
	require.NotNil(t, r.Ffo)
	assert.Equal(t, 250.0, *r.Ffo)
	assert.Nil(t, r.GrossProfit)
	assert.Nil(t, r.InvestingCashFlow)
}

func TestNormalizeDropsUnparseableFiscalPeriods(t *testing.T) {
	batch := Batch{
		Kind:      KindOther,
		CompanyID: 5,
		Currency:  "USD",
		Other: []OtherStatement{
			{FiscalQuarter: "2024-Q1", Term: models.DurationTTM, PeriodEnding: "2024-03-31", Revenue: 100},
			{FiscalQuarter: "bogus", Term: models.DurationTTM, PeriodEnding: "2024-06-30", Revenue: 200},
			{FiscalQuarter: "2024-Q3", Term: models.DurationTTM, PeriodEnding: "2024-09-30", Revenue: 300},
		},
	}

	reports, err := Normalize(batch)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, 100.0, reports[0].Revenue)
	assert.Equal(t, 300.0, reports[1].Revenue)
}

func TestNormalizeMalformedDateAbortsBatch(t *testing.T) {
	batch := Batch{
		Kind:      KindOther,
		CompanyID: 5,
		Currency:  "USD",
		Other: []OtherStatement{
			{FiscalQuarter: "2024-Q1", Term: models.DurationTTM, PeriodEnding: "2024-03-31", Revenue: 100},
			{FiscalQuarter: "2024-Q2", Term: models.DurationTTM, PeriodEnding: "not a date", Revenue: 200},
		},
	}

	reports, err := Normalize(batch)
	assert.Error(t, err)
	assert.Nil(t, reports)
}

func TestNormalizeUnknownKind(t *testing.T) {
	_, err := Normalize(Batch{Kind: Kind("mystery")})
	assert.Error(t, err)
}

func TestNormalizeEmptyBatch(t *testing.T) {
	reports, err := Normalize(Batch{Kind: KindNominal, CompanyID: 1})
	require.NoError(t, err)
	assert.Empty(t, reports)
}
