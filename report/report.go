// Package report renders calculation results as the plain text the advisor
// reads back to the client.
package report

import (
	"fmt"
	"sort"
	"strings"

	"wealth-advisor/domain"
)

func Compound(r domain.CompoundingResult) string {
	var b strings.Builder
	b.WriteString("Compound Interest Analysis:\n")
	b.WriteString(fmt.Sprintf("- Initial Investment: %s\n", usd(r.Principal)))
	b.WriteString(fmt.Sprintf("- Annual Rate: %s%%\n", number(r.AnnualRatePercent)))
	b.WriteString(fmt.Sprintf("- Time Period: %s years\n", number(r.Years)))
	b.WriteString(fmt.Sprintf("- Future Value: %s\n", usd(r.FutureValue)))
	b.WriteString(fmt.Sprintf("- Interest Earned: %s\n", usd(r.InterestEarned)))
	b.WriteString(fmt.Sprintf("- Effective Annual Rate: %s%%\n", number(r.EffectiveAnnualRatePercent)))
	b.WriteString("\nThis shows the power of compound growth over time!")
	return b.String()
}

func Retirement(r domain.RetirementProjection) string {
	var b strings.Builder
	b.WriteString("Retirement Planning Analysis:\n")
	b.WriteString(fmt.Sprintf("- Current Age: %d\n", r.CurrentAge))
	b.WriteString(fmt.Sprintf("- Years to Retirement: %d\n", r.YearsToRetirement))
	b.WriteString(fmt.Sprintf("- Current Savings: %s\n", usd(r.CurrentSavings)))
	b.WriteString(fmt.Sprintf("- Monthly Contribution: %s\n", usd(r.MonthlyContribution)))
	b.WriteString(fmt.Sprintf("- Desired Income: %s\n", usd(r.DesiredAnnualIncome)))

	b.WriteString("\nProjections:\n")
	b.WriteString(fmt.Sprintf("- Future Value of Current Savings: %s\n", usd(r.FutureSavingsValue)))
	b.WriteString(fmt.Sprintf("- Future Value of Contributions: %s\n", usd(r.FutureContributionsValue)))
	b.WriteString(fmt.Sprintf("- Total Retirement Savings: %s\n", usd(r.TotalProjectedSavings)))
	b.WriteString(fmt.Sprintf("- Inflation-Adjusted Income Need: %s\n", usd(r.InflationAdjustedIncome)))
	b.WriteString(fmt.Sprintf("- Required Savings: %s\n", usd(r.RequiredSavings)))

	if r.OnTrack {
		b.WriteString("\nStatus: ON TRACK!\n")
	} else {
		b.WriteString(fmt.Sprintf("\nStatus: SHORTFALL: %s\n", usd(r.Shortfall)))
	}

	b.WriteString("\nRecommendations:\n")
	switch {
	case r.OnTrack:
		b.WriteString("- Continue current savings rate\n")
	case r.MonthlyShortfall > 0:
		b.WriteString(fmt.Sprintf("- Increase monthly savings by %s\n", usd(r.MonthlyShortfall)))
	default:
		// no months left to close the gap
		b.WriteString(fmt.Sprintf("- Close the gap of %s before retiring\n", usd(r.Shortfall)))
	}
	b.WriteString("- Consider increasing contributions annually\n")
	b.WriteString("- Review investment allocation for optimal returns")
	return b.String()
}

func Mortgage(r domain.MortgageSchedule) string {
	var b strings.Builder
	b.WriteString("Mortgage Analysis:\n")
	b.WriteString(fmt.Sprintf("- Loan Amount: %s\n", usd(r.LoanAmount)))
	b.WriteString(fmt.Sprintf("- Down Payment: %s (%s%%)\n", usd(r.DownPayment), number(r.DownPaymentPercent)))
	b.WriteString(fmt.Sprintf("- Principal: %s\n", usd(r.Principal)))
	b.WriteString(fmt.Sprintf("- Interest Rate: %s%%\n", number(r.AnnualRatePercent)))
	b.WriteString(fmt.Sprintf("- Loan Term: %d years\n", r.TermYears))

	b.WriteString("\nPayment Breakdown:\n")
	b.WriteString(fmt.Sprintf("- Monthly Payment: %s\n", usd(r.MonthlyPayment)))
	b.WriteString(fmt.Sprintf("- Total Paid: %s\n", usd(r.TotalPaid)))
	b.WriteString(fmt.Sprintf("- Total Interest: %s\n", usd(r.TotalInterest)))

	b.WriteString("\nConsiderations:\n")
	b.WriteString("- Higher down payments reduce total interest paid\n")
	b.WriteString("- Shorter terms increase monthly payments but reduce total cost\n")
	b.WriteString("- Compare with investment returns on down payment funds")
	return b.String()
}

func Portfolio(r domain.PortfolioAnalysis) string {
	var b strings.Builder
	b.WriteString("Portfolio Analysis:\n")
	b.WriteString(fmt.Sprintf("- Total Value: %s\n", usd(r.TotalValue)))
	b.WriteString(fmt.Sprintf("- Risk Level: %s (Score: %s)\n", r.RiskLevel, number(r.RiskScore)))
	b.WriteString(fmt.Sprintf("- Diversification Score: %s\n", number(r.DiversificationScore)))

	labels := make([]string, 0, len(r.AllocationPercent))
	for label := range r.AllocationPercent {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	b.WriteString("\nAsset Allocation:\n")
	for _, label := range labels {
		b.WriteString(fmt.Sprintf("- %s: %.1f%%\n", label, r.AllocationPercent[label]))
	}
	if len(r.Unclassified) > 0 {
		b.WriteString(fmt.Sprintf("\nNot counted toward risk: %s\n", strings.Join(r.Unclassified, ", ")))
	}

	b.WriteString("\nRecommendations:\n")
	bullets(&b, r.Notes)
	return strings.TrimSuffix(b.String(), "\n")
}

func Tax(r domain.TaxEfficiencyPlan) string {
	var b strings.Builder
	b.WriteString("Tax Efficiency Analysis:\n")
	b.WriteString(fmt.Sprintf("- Annual Income: %s\n", usd(r.Income)))
	b.WriteString(fmt.Sprintf("- Filing Status: %s\n", titleCase(string(r.FilingStatus))))
	b.WriteString(fmt.Sprintf("- Marginal Tax Rate: %s%%\n", number(r.MarginalRatePercent)))
	b.WriteString(fmt.Sprintf("- Investment Amount: %s\n", usd(r.InvestmentAmount)))
	b.WriteString(fmt.Sprintf("- Potential 401(k) Tax Savings: %s\n", usd(r.TaxSavings401k)))

	b.WriteString("\nRecommendations:\n")
	bullets(&b, r.Recommendations)
	b.WriteString("\nTax-efficient investing can significantly impact your long-term returns!")
	return b.String()
}

func Education(t domain.EducationTopic) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s:\n", t.Title))
	b.WriteString("\nKey Points:\n")
	bullets(&b, t.KeyPoints)
	b.WriteString(fmt.Sprintf("\nExample: %s\n", t.Example))
	b.WriteString("\nUnderstanding these concepts is crucial for building long-term wealth!")
	return b.String()
}
