package domain

type MortgageInput struct {
	LoanAmount        float64 `json:"loan_amount"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	TermYears         int     `json:"term_years"`
	DownPayment       float64 `json:"down_payment"`
}

type MortgageSchedule struct {
	LoanAmount         float64 `json:"loan_amount"`
	DownPayment        float64 `json:"down_payment"`
	Principal          float64 `json:"principal"`
	AnnualRatePercent  float64 `json:"annual_rate_percent"`
	TermYears          int     `json:"term_years"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	TotalPaid          float64 `json:"total_paid"`
	TotalInterest      float64 `json:"total_interest"`
	DownPaymentPercent float64 `json:"down_payment_percent"`
}
