package tools

import (
	"context"
	"errors"

	"wealth-advisor/domain"
	"wealth-advisor/report"
	"wealth-advisor/service"
)

// Defaults are the planning assumptions filled in when the caller leaves
// them out.
type Defaults struct {
	RetirementAge    int
	ExpectedReturn   float64
	InflationRate    float64
	CompoundsPerYear int
}

func DefaultAssumptions() Defaults {
	return Defaults{
		RetirementAge:    65,
		ExpectedReturn:   7.0,
		InflationRate:    service.DefaultInflationRatePercent,
		CompoundsPerYear: service.DefaultCompoundsPerYear,
	}
}

// RegisterBuiltins adds the advisor's calculation tools to r.
func RegisterBuiltins(r *Registry, svc *service.FinancialService, d Defaults) error {
	builtins := []*Tool{
		compoundInterestTool(svc, d),
		portfolioTool(svc),
		retirementTool(svc, d),
		mortgageTool(svc),
		taxTool(svc),
		educationTool(svc),
	}
	for _, t := range builtins {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

func compoundInterestTool(svc *service.FinancialService, d Defaults) *Tool {
	return &Tool{
		Name:        "calculate_compound_interest",
		Description: "Calculate compound interest and future value for investment planning.",
		Parameters: map[string]ParameterDef{
			"principal":          {Type: "number", Description: "Initial investment amount", Required: true},
			"rate":               {Type: "number", Description: "Annual interest rate as a percentage, e.g. 7.0 for 7%", Required: true},
			"time_years":         {Type: "number", Description: "Investment time period in years", Required: true},
			"compounds_per_year": {Type: "integer", Description: "Compounding periods per year", Default: d.CompoundsPerYear},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			principal, err := p.Float("principal")
			if err != nil {
				return "", err
			}
			rate, err := p.Float("rate")
			if err != nil {
				return "", err
			}
			years, err := p.Float("time_years")
			if err != nil {
				return "", err
			}
			n, err := p.Int("compounds_per_year")
			if err != nil {
				return "", err
			}
			result, err := svc.Compound(domain.CompoundInput{
				Principal:         principal,
				AnnualRatePercent: rate,
				Years:             years,
				CompoundsPerYear:  n,
			})
			if err != nil {
				return "", err
			}
			return report.Compound(result), nil
		},
	}
}

func portfolioTool(svc *service.FinancialService) *Tool {
	return &Tool{
		Name:        "analyze_portfolio",
		Description: "Analyze a client's investment portfolio for allocation and risk assessment.",
		Parameters: map[string]ParameterDef{
			"portfolio_json": {Type: "string", Description: `JSON object of holdings, e.g. {"US Stocks": 50000, "Bonds": 30000}`, Required: true},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			data, err := p.JSON("portfolio_json")
			if err != nil {
				return "", err
			}
			analysis, err := svc.AnalyzePortfolioJSON(data)
			if err != nil {
				return "", err
			}
			return report.Portfolio(analysis), nil
		},
		Describe: func(err error) string {
			if errors.Is(err, service.ErrEmptyPortfolio) {
				return portfolioEmptyMessage
			}
			return portfolioMalformedMessage
		},
	}
}

func retirementTool(svc *service.FinancialService, d Defaults) *Tool {
	return &Tool{
		Name:        "retirement_planning_analysis",
		Description: "Comprehensive retirement planning analysis.",
		Parameters: map[string]ParameterDef{
			"current_age":          {Type: "integer", Description: "Client's current age", Required: true},
			"current_savings":      {Type: "number", Description: "Current retirement savings", Required: true},
			"monthly_contribution": {Type: "number", Description: "Monthly contribution to retirement", Required: true},
			"desired_income":       {Type: "number", Description: "Desired annual income in retirement", Required: true},
			"retirement_age":       {Type: "integer", Description: "Age at retirement", Default: d.RetirementAge},
			"expected_return":      {Type: "number", Description: "Expected annual return as a percentage", Default: d.ExpectedReturn},
			"inflation_rate":       {Type: "number", Description: "Expected annual inflation as a percentage", Default: d.InflationRate},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			input := domain.RetirementInput{}
			var err error
			if input.CurrentAge, err = p.Int("current_age"); err != nil {
				return "", err
			}
			if input.RetirementAge, err = p.Int("retirement_age"); err != nil {
				return "", err
			}
			if input.CurrentSavings, err = p.Float("current_savings"); err != nil {
				return "", err
			}
			if input.MonthlyContribution, err = p.Float("monthly_contribution"); err != nil {
				return "", err
			}
			if input.DesiredAnnualIncome, err = p.Float("desired_income"); err != nil {
				return "", err
			}
			if input.ExpectedReturnPercent, err = p.Float("expected_return"); err != nil {
				return "", err
			}
			if input.InflationRatePercent, err = p.Float("inflation_rate"); err != nil {
				return "", err
			}
			projection, err := svc.ProjectRetirement(input)
			if err != nil {
				return "", err
			}
			return report.Retirement(projection), nil
		},
	}
}

func mortgageTool(svc *service.FinancialService) *Tool {
	return &Tool{
		Name:        "mortgage_analysis",
		Description: "Analyze mortgage options and payments.",
		Parameters: map[string]ParameterDef{
			"loan_amount":     {Type: "number", Description: "Total loan amount", Required: true},
			"interest_rate":   {Type: "number", Description: "Annual interest rate as a percentage", Required: true},
			"loan_term_years": {Type: "integer", Description: "Loan term in years", Required: true},
			"down_payment":    {Type: "number", Description: "Down payment amount", Default: 0.0},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			input := domain.MortgageInput{}
			var err error
			if input.LoanAmount, err = p.Float("loan_amount"); err != nil {
				return "", err
			}
			if input.AnnualRatePercent, err = p.Float("interest_rate"); err != nil {
				return "", err
			}
			if input.TermYears, err = p.Int("loan_term_years"); err != nil {
				return "", err
			}
			if input.DownPayment, err = p.Float("down_payment"); err != nil {
				return "", err
			}
			schedule, err := svc.Amortize(input)
			if err != nil {
				return "", err
			}
			return report.Mortgage(schedule), nil
		},
	}
}

func taxTool(svc *service.FinancialService) *Tool {
	return &Tool{
		Name:        "tax_efficiency_analysis",
		Description: "Provide tax-efficient investment recommendations.",
		Parameters: map[string]ParameterDef{
			"income":            {Type: "number", Description: "Annual income", Required: true},
			"filing_status":     {Type: "string", Description: `"single" or "married"`, Default: string(domain.FilingSingle)},
			"investment_amount": {Type: "number", Description: "Amount available for investment", Required: true},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			income, err := p.Float("income")
			if err != nil {
				return "", err
			}
			status, err := p.String("filing_status")
			if err != nil {
				return "", err
			}
			amount, err := p.Float("investment_amount")
			if err != nil {
				return "", err
			}
			plan, err := svc.AssessTaxEfficiency(domain.TaxInput{
				Income:           income,
				FilingStatus:     status,
				InvestmentAmount: amount,
			})
			if err != nil {
				return "", err
			}
			return report.Tax(plan), nil
		},
	}
}

func educationTool(svc *service.FinancialService) *Tool {
	return &Tool{
		Name:        "investment_education",
		Description: "Provide educational content on investment topics.",
		Parameters: map[string]ParameterDef{
			"topic": {Type: "string", Description: "diversification, compound_interest, risk_tolerance or retirement_planning", Required: true},
		},
		Handler: func(_ context.Context, p Params) (string, error) {
			topic, err := p.String("topic")
			if err != nil {
				return "", err
			}
			return report.Education(svc.Education(topic)), nil
		},
	}
}
