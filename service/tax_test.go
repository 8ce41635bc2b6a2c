package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-advisor/domain"
)

func TestAssessTaxEfficiency_Brackets(t *testing.T) {
	svc := NewFinancialService(nil)

	cases := []struct {
		name   string
		income float64
		status string
		rate   float64
	}{
		{"below first threshold", 5000, "single", 10},
		{"exactly on a threshold", 47150, "single", 10},
		{"lower middle income", 50000, "single", 12},
		{"inside the 24% band", 150000, "single", 22},
		{"high income", 250000, "single", 32},
		{"top bracket", 1_000_000, "single", 35},
		{"married middle income", 150000, "married", 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := svc.AssessTaxEfficiency(domain.TaxInput{
				Income:       tc.income,
				FilingStatus: tc.status,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.rate, plan.MarginalRatePercent)
		})
	}
}

func TestAssessTaxEfficiency_LowTierAdvice(t *testing.T) {
	svc := NewFinancialService(nil)

	plan, err := svc.AssessTaxEfficiency(domain.TaxInput{
		Income:           50000,
		FilingStatus:     "single",
		InvestmentAmount: 5000,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.FilingSingle, plan.FilingStatus)
	assert.False(t, plan.FilingStatusDefaulted)
	assert.Equal(t, 600.0, plan.TaxSavings401k)
	assert.Len(t, plan.Recommendations, 4)
	assert.Equal(t, "Roth IRA and Roth 401(k) for tax-free growth", plan.Recommendations[0])
}

func TestAssessTaxEfficiency_ContributionCap(t *testing.T) {
	svc := NewFinancialService(nil)

	plan, err := svc.AssessTaxEfficiency(domain.TaxInput{
		Income:           150000,
		FilingStatus:     "single",
		InvestmentAmount: 30000,
	})
	require.NoError(t, err)

	assert.Equal(t, 22.0, plan.MarginalRatePercent)
	assert.Equal(t, 5060.0, plan.TaxSavings401k)
	assert.Equal(t, "Balance between Traditional and Roth accounts", plan.Recommendations[0])
}

func TestAssessTaxEfficiency_HighTierAdvice(t *testing.T) {
	svc := NewFinancialService(nil)

	plan, err := svc.AssessTaxEfficiency(domain.TaxInput{Income: 250000, FilingStatus: "single"})
	require.NoError(t, err)

	assert.Equal(t, "Maximize 401(k) contributions ($23,000 in 2024)", plan.Recommendations[0])
	assert.Zero(t, plan.TaxSavings401k)
}

func TestAssessTaxEfficiency_FilingStatus(t *testing.T) {
	svc := NewFinancialService(nil)

	plan, err := svc.AssessTaxEfficiency(domain.TaxInput{Income: 80000, FilingStatus: " MARRIED "})
	require.NoError(t, err)
	assert.Equal(t, domain.FilingMarried, plan.FilingStatus)
	assert.False(t, plan.FilingStatusDefaulted)

	plan, err = svc.AssessTaxEfficiency(domain.TaxInput{Income: 80000, FilingStatus: "head_of_household"})
	require.NoError(t, err)
	assert.Equal(t, domain.FilingSingle, plan.FilingStatus)
	assert.True(t, plan.FilingStatusDefaulted)
	assert.Equal(t, 12.0, plan.MarginalRatePercent)
}

func TestAssessTaxEfficiency_RecommendationsAreCopies(t *testing.T) {
	svc := NewFinancialService(nil)

	first, err := svc.AssessTaxEfficiency(domain.TaxInput{Income: 50000})
	require.NoError(t, err)
	first.Recommendations[0] = "changed"

	second, err := svc.AssessTaxEfficiency(domain.TaxInput{Income: 50000})
	require.NoError(t, err)
	assert.NotEqual(t, "changed", second.Recommendations[0])
}

func TestAssessTaxEfficiency_InvalidInput(t *testing.T) {
	svc := NewFinancialService(nil)

	cases := map[string]domain.TaxInput{
		"negative income":      {Income: -1},
		"negative investment":  {Income: 50000, InvestmentAmount: -100},
		"income too large":     {Income: MaxAmount * 10},
		"investment too large": {Income: 50000, InvestmentAmount: 1e18},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AssessTaxEfficiency(input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
