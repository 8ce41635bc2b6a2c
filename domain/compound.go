package domain

type CompoundInput struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Years             float64 `json:"years"`
	CompoundsPerYear  int     `json:"compounds_per_year,omitempty"` // 0 means monthly
}

type CompoundingResult struct {
	Principal                  float64 `json:"principal"`
	AnnualRatePercent          float64 `json:"annual_rate_percent"`
	Years                      float64 `json:"years"`
	CompoundsPerYear           int     `json:"compounds_per_year"`
	FutureValue                float64 `json:"future_value"`
	InterestEarned             float64 `json:"interest_earned"`
	EffectiveAnnualRatePercent float64 `json:"effective_annual_rate_percent"`
}
