package domain

type RetirementInput struct {
	CurrentAge            int     `json:"current_age"`
	RetirementAge         int     `json:"retirement_age"`
	CurrentSavings        float64 `json:"current_savings"`
	MonthlyContribution   float64 `json:"monthly_contribution"`
	ExpectedReturnPercent float64 `json:"expected_return_percent"`
	DesiredAnnualIncome   float64 `json:"desired_annual_income"`
	InflationRatePercent  float64 `json:"inflation_rate_percent"`
}

type RetirementProjection struct {
	CurrentAge               int     `json:"current_age"`
	RetirementAge            int     `json:"retirement_age"`
	YearsToRetirement        int     `json:"years_to_retirement"`
	CurrentSavings           float64 `json:"current_savings"`
	MonthlyContribution      float64 `json:"monthly_contribution"`
	ExpectedReturnPercent    float64 `json:"expected_return_percent"`
	InflationRatePercent     float64 `json:"inflation_rate_percent"`
	DesiredAnnualIncome      float64 `json:"desired_annual_income"`
	TotalContributions       float64 `json:"total_contributions"`
	FutureSavingsValue       float64 `json:"future_savings_value"`
	FutureContributionsValue float64 `json:"future_contributions_value"`
	TotalProjectedSavings    float64 `json:"total_projected_savings"`
	InflationAdjustedIncome  float64 `json:"inflation_adjusted_income"`
	RequiredSavings          float64 `json:"required_savings"`
	Shortfall                float64 `json:"shortfall"` // negative means surplus
	OnTrack                  bool    `json:"on_track"`
	MonthlyShortfall         float64 `json:"monthly_shortfall"`
}
