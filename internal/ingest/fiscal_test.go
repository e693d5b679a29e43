package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiscalPeriod(t *testing.T) {
	tests := []struct {
		in      string
		year    int
		quarter int
		ok      bool
	}{
		{"2024-Q3", 2024, 3, true},
		{"1999-Q1", 1999, 1, true},
		{"2024-Q4", 2024, 4, true},
		{"2024-Q5", 0, 0, false},
		{"2024-Q0", 0, 0, false},
		{"24-Q1", 0, 0, false},
		{"2024Q1", 0, 0, false},
		{"2024-Q1 ", 0, 0, false},
		{"Q1-2024", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			year, quarter, ok := ParseFiscalPeriod(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.year, year)
			assert.Equal(t, tt.quarter, quarter)
		})
	}
}

func TestFormatFiscalPeriodRoundTrip(t *testing.T) {
	for year := 1990; year <= 2030; year += 7 {
		for quarter := 1; quarter <= 4; quarter++ {
			s := FormatFiscalPeriod(year, quarter)
			gotYear, gotQuarter, ok := ParseFiscalPeriod(s)
			require.True(t, ok, s)
			assert.Equal(t, year, gotYear)
			assert.Equal(t, quarter, gotQuarter)
		}
	}
}

func TestParsePeriodEnding(t *testing.T) {
	got, err := ParsePeriodEnding("2024-09-30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), got)

	got, err = ParsePeriodEnding("Sep 30, 2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC), got)
}

func TestParsePeriodEndingRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "30/09/2024", "September 30", "2024-13-01"} {
		_, err := ParsePeriodEnding(in)
		assert.Error(t, err, in)
	}
}
