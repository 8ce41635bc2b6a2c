package service

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"

	"wealth-advisor/domain"
)

// AnalyzePortfolio breaks holdings down by label and asset class and scores
// their risk and concentration.
func (s *FinancialService) AnalyzePortfolio(holdings domain.Holdings) (domain.PortfolioAnalysis, error) {
	if len(holdings) == 0 {
		return domain.PortfolioAnalysis{}, fmt.Errorf("%w: no holdings", ErrEmptyPortfolio)
	}

	labels := make([]string, 0, len(holdings))
	for label := range holdings {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	total := 0.0
	for _, label := range labels {
		v := holdings[label]
		if !isFinite(v) {
			return domain.PortfolioAnalysis{}, invalidf("holding %q must be a finite number", label)
		}
		if v < 0 {
			return domain.PortfolioAnalysis{}, invalidf("holding %q cannot be negative", label)
		}
		total += v
	}
	if !isFinite(total) || total > MaxAmount {
		return domain.PortfolioAnalysis{}, invalidf("portfolio total exceeds the maximum of $%.2f", MaxAmount)
	}
	if total == 0 {
		return domain.PortfolioAnalysis{}, fmt.Errorf("%w: total value is zero", ErrEmptyPortfolio)
	}

	table := s.tables.Portfolio
	shares := make(map[string]float64, len(labels))
	byClass := make(map[domain.AssetClass]float64, len(domain.AssetClasses))
	var unclassified []string
	largest := 0.0

	for _, label := range labels {
		share := holdings[label] / total * 100
		shares[label] = share
		largest = math.Max(largest, share)

		if class, ok := table.Classify(label); ok {
			byClass[class] += share
		} else {
			unclassified = append(unclassified, label)
		}
	}

	risk := 0.0
	classAllocation := make(map[domain.AssetClass]float64, len(domain.AssetClasses))
	for _, class := range domain.AssetClasses {
		risk += byClass[class] * table.riskWeight(class)
		classAllocation[class] = roundTo2Decimals(byClass[class])
	}
	// the band is chosen on the unrounded score; 9 places only absorb
	// float noise so a 60/40 split stays exactly on the 0.6 breakpoint
	riskLevel := table.RiskBands.Level(round(risk/100, 9))
	riskScore := round(risk/100, 3)
	diversification := round(1-largest/100, 3)

	held := make(domain.Holdings, len(holdings))
	for label, v := range holdings {
		held[label] = v
	}

	return domain.PortfolioAnalysis{
		Holdings:                    held,
		TotalValue:                  roundTo2Decimals(total),
		AllocationPercent:           apportion(labels, shares),
		AssetClassAllocationPercent: classAllocation,
		Unclassified:                unclassified,
		RiskScore:                   riskScore,
		RiskLevel:                   riskLevel,
		DiversificationScore:        diversification,
		Notes:                       reviewNotes(table.Review, diversification, riskScore),
	}, nil
}

// AnalyzePortfolioJSON parses a JSON object of label to amount and analyzes it.
func (s *FinancialService) AnalyzePortfolioJSON(data string) (domain.PortfolioAnalysis, error) {
	var holdings domain.Holdings
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &holdings); err != nil {
		return domain.PortfolioAnalysis{}, fmt.Errorf("%w: %v", ErrMalformedPortfolio, err)
	}
	if holdings == nil {
		return domain.PortfolioAnalysis{}, fmt.Errorf("%w: expected a JSON object of holdings", ErrMalformedPortfolio)
	}
	return s.AnalyzePortfolio(holdings)
}

// apportion rounds percentages to hundredths with the largest remainder
// method, so the rounded values always add up to exactly 100.
func apportion(labels []string, shares map[string]float64) map[string]float64 {
	const whole = 100 * 100

	type part struct {
		label     string
		units     int64
		remainder float64
	}
	parts := make([]part, 0, len(labels))
	var assigned int64
	for _, label := range labels {
		exact := shares[label] * 100
		floor := math.Floor(exact)
		parts = append(parts, part{label: label, units: int64(floor), remainder: exact - floor})
		assigned += int64(floor)
	}

	sort.SliceStable(parts, func(i, j int) bool {
		return parts[i].remainder > parts[j].remainder
	})
	for i := 0; assigned < whole && i < len(parts); i++ {
		parts[i].units++
		assigned++
	}

	out := make(map[string]float64, len(parts))
	for _, p := range parts {
		out[p.label] = float64(p.units) / 100
	}
	return out
}

func reviewNotes(review ReviewThresholds, diversification, risk float64) []string {
	notes := make([]string, 0, 3)
	if diversification < review.DiversificationTarget {
		notes = append(notes, "Consider increasing diversification")
	} else {
		notes = append(notes, "Good diversification")
	}
	if risk > review.RiskReviewAbove {
		notes = append(notes, "Review risk tolerance")
	} else {
		notes = append(notes, "Risk level appears appropriate")
	}
	return append(notes, "Rebalance portfolio annually")
}
