package service

import (
	"math"

	"wealth-advisor/domain"
)

// AssessTaxEfficiency picks a marginal rate from the bracket table and the
// matching advice tier, and estimates what a 401(k) contribution saves.
//
// An unknown filing status is not an error: it is treated as the table's
// default status and FilingStatusDefaulted is set.
func (s *FinancialService) AssessTaxEfficiency(input domain.TaxInput) (domain.TaxEfficiencyPlan, error) {
	if err := requireFinite(
		field{"income", input.Income},
		field{"investment amount", input.InvestmentAmount},
	); err != nil {
		return domain.TaxEfficiencyPlan{}, err
	}
	if input.Income < 0 {
		return domain.TaxEfficiencyPlan{}, invalidf("income cannot be negative")
	}
	if input.InvestmentAmount < 0 {
		return domain.TaxEfficiencyPlan{}, invalidf("investment amount cannot be negative")
	}

	if err := requireAmount(
		field{"income", input.Income},
		field{"investment amount", input.InvestmentAmount},
	); err != nil {
		return domain.TaxEfficiencyPlan{}, err
	}

	table := s.tables.Tax
	status, defaulted := table.FilingStatus(input.FilingStatus)
	rate := table.MarginalRate(status, input.Income)
	eligible := math.Min(input.InvestmentAmount, table.ContributionCap401k)

	return domain.TaxEfficiencyPlan{
		Income:                input.Income,
		FilingStatus:          status,
		FilingStatusDefaulted: defaulted,
		MarginalRatePercent:   round(rate*100, 1),
		InvestmentAmount:      input.InvestmentAmount,
		Recommendations:       table.Recommendations(rate),
		TaxSavings401k:        roundTo2Decimals(eligible * rate),
	}, nil
}
