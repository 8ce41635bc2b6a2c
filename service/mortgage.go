package service

import (
	"math"

	"wealth-advisor/domain"
)

// Amortize calculates the fixed monthly payment of a mortgage and what it
// costs over the full term.
func Amortize(input domain.MortgageInput) (domain.MortgageSchedule, error) {

	// Validar entrada
	if err := requireFinite(
		field{"loan amount", input.LoanAmount},
		field{"interest rate", input.AnnualRatePercent},
		field{"down payment", input.DownPayment},
	); err != nil {
		return domain.MortgageSchedule{}, err
	}
	if input.LoanAmount <= 0 {
		return domain.MortgageSchedule{}, invalidf("loan amount must be positive")
	}
	if input.LoanAmount > MaxLoanAmount {
		return domain.MortgageSchedule{}, invalidf("loan amount exceeds the maximum of $%.2f", MaxLoanAmount)
	}
	if input.AnnualRatePercent < 0 {
		return domain.MortgageSchedule{}, invalidf("interest rate cannot be negative")
	}
	if input.AnnualRatePercent > MaxInterestRate {
		return domain.MortgageSchedule{}, invalidf("interest rate exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if input.TermYears < MinTermYears {
		return domain.MortgageSchedule{}, invalidf("term must be at least %d year", MinTermYears)
	}
	if input.TermYears > MaxTermYears {
		return domain.MortgageSchedule{}, invalidf("term exceeds the maximum of %d years", MaxTermYears)
	}
	if input.DownPayment < 0 {
		return domain.MortgageSchedule{}, invalidf("down payment cannot be negative")
	}
	if input.DownPayment > input.LoanAmount {
		return domain.MortgageSchedule{}, invalidf("down payment exceeds the loan amount")
	}

	principal := input.LoanAmount - input.DownPayment
	monthlyRate := input.AnnualRatePercent / 100 / MonthsPerYear
	payments := float64(input.TermYears * MonthsPerYear)

	// con tasa 0 (o tan chica que no cambia el factor) el pago es lineal
	factor := math.Pow(1+monthlyRate, payments)
	var payment float64
	if monthlyRate == 0 || factor == 1 {
		payment = principal / payments
	} else {
		payment = principal * monthlyRate * factor / (factor - 1)
	}

	totalPaid := payment * payments
	totalInterest := totalPaid - principal

	return domain.MortgageSchedule{
		LoanAmount:         input.LoanAmount,
		DownPayment:        input.DownPayment,
		Principal:          roundTo2Decimals(principal),
		AnnualRatePercent:  input.AnnualRatePercent,
		TermYears:          input.TermYears,
		MonthlyPayment:     roundTo2Decimals(payment),
		TotalPaid:          roundTo2Decimals(totalPaid),
		TotalInterest:      roundTo2Decimals(totalInterest),
		DownPaymentPercent: roundTo2Decimals(input.DownPayment / input.LoanAmount * 100),
	}, nil
}
