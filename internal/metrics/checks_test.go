package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"earnings-screener/internal/models"
)

func TestNetMarginOptimized(t *testing.T) {
	tests := []struct {
		name            string
		report          *models.EarningsReport
		marginFactor    float64
		wantTheoretical float64
		wantOptimized   bool
	}{
		{
			name: "clears the bar",
			report: &models.EarningsReport{
				GrossMargin:     f(60),
				OperatingMargin: 30,
				NetMargin:       25,
			},
			marginFactor:    3,
			wantTheoretical: 20,
			wantOptimized:   true,
		},
		{
			name: "net margin below theoretical",
			report: &models.EarningsReport{
				GrossMargin:     f(60),
				OperatingMargin: 30,
				NetMargin:       15,
			},
			marginFactor:    3,
			wantTheoretical: 20,
			wantOptimized:   false,
		},
		{
			name: "operating margin not above net margin",
			report: &models.EarningsReport{
				GrossMargin:     f(60),
				OperatingMargin: 25,
				NetMargin:       25,
			},
			marginFactor:    3,
			wantTheoretical: 20,
			wantOptimized:   false,
		},
		{
			name: "missing gross margin defaults to 100",
			report: &models.EarningsReport{
				OperatingMargin: 40,
				NetMargin:       35,
			},
			marginFactor:    3,
			wantTheoretical: 100.0 / 3,
			wantOptimized:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theoretical, optimized := NetMarginOptimized(tt.report, tt.marginFactor)
			assert.InDelta(t, tt.wantTheoretical, theoretical, 1e-9)
			assert.Equal(t, tt.wantOptimized, optimized)
		})
	}
}

func TestHealthyCashPosition(t *testing.T) {
	tests := []struct {
		name      string
		netCash   float64
		netIncome float64
		want      bool
	}{
		{"positive net cash", 100, 0, true},
		{"zero net cash", 0, -10, true},
		{"debt covered within two years", -50, 30, true},
		{"debt not covered", -50, 20, false},
		{"debt with no income", -50, 0, false},
		{"debt with losses", -50, -10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &models.EarningsReport{NetCash: tt.netCash, NetIncome: tt.netIncome}
			assert.Equal(t, tt.want, HealthyCashPosition(r))
		})
	}
}
