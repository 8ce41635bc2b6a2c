package domain

type AssetClass string

const (
	AssetClassStocks      AssetClass = "stocks"
	AssetClassBonds       AssetClass = "bonds"
	AssetClassRealEstate  AssetClass = "real_estate"
	AssetClassCommodities AssetClass = "commodities"
	AssetClassCash        AssetClass = "cash"
)

// AssetClasses lists the fixed classes in classification order.
var AssetClasses = []AssetClass{
	AssetClassStocks,
	AssetClassBonds,
	AssetClassRealEstate,
	AssetClassCommodities,
	AssetClassCash,
}

type RiskLevel string

const (
	RiskConservative RiskLevel = "Conservative"
	RiskModerate     RiskLevel = "Moderate"
	RiskAggressive   RiskLevel = "Aggressive"
)

// Holdings maps an asset label to its current value.
type Holdings map[string]float64

type PortfolioAnalysis struct {
	Holdings                    Holdings               `json:"holdings"`
	TotalValue                  float64                `json:"total_value"`
	AllocationPercent           map[string]float64     `json:"allocation_percent"`
	AssetClassAllocationPercent map[AssetClass]float64 `json:"asset_class_allocation_percent"`
	Unclassified                []string               `json:"unclassified,omitempty"`
	RiskScore                   float64                `json:"risk_score"`
	RiskLevel                   RiskLevel              `json:"risk_level"`
	DiversificationScore        float64                `json:"diversification_score"`
	Notes                       []string               `json:"notes"`
}
