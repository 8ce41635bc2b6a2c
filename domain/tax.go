package domain

type FilingStatus string

const (
	FilingSingle  FilingStatus = "single"
	FilingMarried FilingStatus = "married"
)

type TaxInput struct {
	Income           float64 `json:"income"`
	FilingStatus     string  `json:"filing_status"`
	InvestmentAmount float64 `json:"investment_amount"`
}

type TaxEfficiencyPlan struct {
	Income                float64      `json:"income"`
	FilingStatus          FilingStatus `json:"filing_status"`
	FilingStatusDefaulted bool         `json:"filing_status_defaulted,omitempty"`
	MarginalRatePercent   float64      `json:"marginal_rate_percent"`
	InvestmentAmount      float64      `json:"investment_amount"`
	Recommendations       []string     `json:"recommendations"`
	TaxSavings401k        float64      `json:"tax_savings_401k"`
}
