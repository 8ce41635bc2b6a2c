package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"wealth-advisor/domain"
)

// runTool prints the spoken report through the tool registry, or the raw
// record when --json is set.
func (a *app) runTool(cmd *cobra.Command, tool string, params map[string]interface{}, record func() (interface{}, error)) error {
	if a.jsonOut {
		v, err := record()
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), v)
	}
	out, err := a.registry.Execute(cmd.Context(), tool, params)
	if err != nil {
		return err
	}
	return printText(cmd.OutOrStdout(), out)
}

func newCompoundCmd(a *app) *cobra.Command {
	var principal, rate, years float64
	var compounds int

	cmd := &cobra.Command{
		Use:   "compound",
		Short: "Future value of a lump sum with compound interest",
		Example: `  advisor compound --principal 10000 --rate 7 --years 30
  advisor compound --principal 10000 --rate 7 --years 30 --compounds 1 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("compounds") {
				compounds = a.cfg.Advisor.CompoundsPerYear
			}
			return a.runTool(cmd, "calculate_compound_interest", map[string]interface{}{
				"principal":          principal,
				"rate":               rate,
				"time_years":         years,
				"compounds_per_year": compounds,
			}, func() (interface{}, error) {
				return a.svc.Compound(domain.CompoundInput{
					Principal:         principal,
					AnnualRatePercent: rate,
					Years:             years,
					CompoundsPerYear:  compounds,
				})
			})
		},
	}
	cmd.Flags().Float64Var(&principal, "principal", 0, "initial investment")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual rate in percent")
	cmd.Flags().Float64Var(&years, "years", 0, "time period in years")
	cmd.Flags().IntVar(&compounds, "compounds", 0, "compounding periods per year (default advisor.compounds_per_year)")
	cmd.MarkFlagRequired("principal")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("years")
	return cmd
}

func newRetireCmd(a *app) *cobra.Command {
	var input domain.RetirementInput

	cmd := &cobra.Command{
		Use:     "retire",
		Short:   "Project retirement savings against the income goal",
		Example: `  advisor retire --age 30 --savings 0 --monthly 1000 --income 80000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("retirement-age") {
				input.RetirementAge = a.cfg.Advisor.RetirementAge
			}
			if !flags.Changed("return") {
				input.ExpectedReturnPercent = a.cfg.Advisor.ExpectedReturn
			}
			if !flags.Changed("inflation") {
				input.InflationRatePercent = a.cfg.Advisor.InflationRate
			}
			return a.runTool(cmd, "retirement_planning_analysis", map[string]interface{}{
				"current_age":          input.CurrentAge,
				"retirement_age":       input.RetirementAge,
				"current_savings":      input.CurrentSavings,
				"monthly_contribution": input.MonthlyContribution,
				"desired_income":       input.DesiredAnnualIncome,
				"expected_return":      input.ExpectedReturnPercent,
				"inflation_rate":       input.InflationRatePercent,
			}, func() (interface{}, error) {
				return a.svc.ProjectRetirement(input)
			})
		},
	}
	cmd.Flags().IntVar(&input.CurrentAge, "age", 0, "current age")
	cmd.Flags().IntVar(&input.RetirementAge, "retirement-age", 0, "retirement age (default advisor.retirement_age)")
	cmd.Flags().Float64Var(&input.CurrentSavings, "savings", 0, "current retirement savings")
	cmd.Flags().Float64Var(&input.MonthlyContribution, "monthly", 0, "monthly contribution")
	cmd.Flags().Float64Var(&input.DesiredAnnualIncome, "income", 0, "desired annual income in retirement")
	cmd.Flags().Float64Var(&input.ExpectedReturnPercent, "return", 0, "expected annual return in percent (default advisor.expected_return)")
	cmd.Flags().Float64Var(&input.InflationRatePercent, "inflation", 0, "annual inflation in percent (default advisor.inflation_rate)")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("income")
	return cmd
}

func newMortgageCmd(a *app) *cobra.Command {
	var input domain.MortgageInput

	cmd := &cobra.Command{
		Use:     "mortgage",
		Short:   "Monthly payment and total cost of a fixed-rate mortgage",
		Example: `  advisor mortgage --amount 300000 --rate 6.5 --years 30 --down 60000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd, "mortgage_analysis", map[string]interface{}{
				"loan_amount":     input.LoanAmount,
				"interest_rate":   input.AnnualRatePercent,
				"loan_term_years": input.TermYears,
				"down_payment":    input.DownPayment,
			}, func() (interface{}, error) {
				return a.svc.Amortize(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.LoanAmount, "amount", 0, "loan amount")
	cmd.Flags().Float64Var(&input.AnnualRatePercent, "rate", 0, "annual rate in percent")
	cmd.Flags().IntVar(&input.TermYears, "years", 30, "loan term in years")
	cmd.Flags().Float64Var(&input.DownPayment, "down", 0, "down payment")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("rate")
	return cmd
}

func newPortfolioCmd(a *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "portfolio [holdings-json]",
		Short: "Allocation, risk and diversification of a set of holdings",
		Example: `  advisor portfolio '{"US Stocks": 60000, "US Bonds": 40000}'
  advisor portfolio --file holdings.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data string
			switch {
			case file != "":
				raw, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("read holdings: %w", err)
				}
				data = string(raw)
			case len(args) == 1:
				data = args[0]
			default:
				return fmt.Errorf("pass the holdings as an argument or with --file")
			}
			return a.runTool(cmd, "analyze_portfolio", map[string]interface{}{
				"portfolio_json": data,
			}, func() (interface{}, error) {
				return a.svc.AnalyzePortfolioJSON(data)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read holdings JSON from a file")
	return cmd
}

func newTaxCmd(a *app) *cobra.Command {
	var input domain.TaxInput

	cmd := &cobra.Command{
		Use:     "tax",
		Short:   "Marginal rate, 401(k) savings and tax-efficient investing advice",
		Example: `  advisor tax --income 150000 --status married --invest 20000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTool(cmd, "tax_efficiency_analysis", map[string]interface{}{
				"income":            input.Income,
				"filing_status":     input.FilingStatus,
				"investment_amount": input.InvestmentAmount,
			}, func() (interface{}, error) {
				return a.svc.AssessTaxEfficiency(input)
			})
		},
	}
	cmd.Flags().Float64Var(&input.Income, "income", 0, "annual income")
	cmd.Flags().StringVar(&input.FilingStatus, "status", "single", "filing status: single or married")
	cmd.Flags().Float64Var(&input.InvestmentAmount, "invest", 0, "amount available to invest")
	cmd.MarkFlagRequired("income")
	return cmd
}

func newLearnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "learn [topic]",
		Short: "Investment education; lists topics when none is given",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if a.jsonOut {
					return printJSON(cmd.OutOrStdout(), a.svc.Topics())
				}
				return printText(cmd.OutOrStdout(), strings.Join(a.svc.Topics(), "\n"))
			}
			topic := strings.Join(args, " ")
			return a.runTool(cmd, "investment_education", map[string]interface{}{
				"topic": topic,
			}, func() (interface{}, error) {
				return a.svc.Education(topic), nil
			})
		},
	}
}
