package service

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"wealth-advisor/domain"
)

//go:embed tables.yaml
var defaultTablesYAML []byte

// Tables is the static reference data the engine is parameterised with:
// tax brackets and advice tiers, asset-class keywords and risk weights,
// and the education library.
type Tables struct {
	Tax       TaxTable       `yaml:"tax"`
	Portfolio PortfolioTable `yaml:"portfolio"`
	Education EducationTable `yaml:"education"`
}

type TaxBracket struct {
	Threshold float64 `yaml:"threshold"`
	Rate      float64 `yaml:"rate"`
}

type AdviceTier struct {
	MinRate         float64  `yaml:"min_rate"`
	Recommendations []string `yaml:"recommendations"`
}

type TaxTable struct {
	Year                int                                  `yaml:"year"`
	BaseRate            float64                              `yaml:"base_rate"`
	DefaultStatus       domain.FilingStatus                  `yaml:"default_status"`
	ContributionCap401k float64                              `yaml:"contribution_cap_401k"`
	Brackets            map[domain.FilingStatus][]TaxBracket `yaml:"brackets"`
	Tiers               []AdviceTier                         `yaml:"tiers"`
}

type AssetClassRule struct {
	Class      domain.AssetClass `yaml:"class"`
	RiskWeight float64           `yaml:"risk_weight"`
	Keywords   []string          `yaml:"keywords"`
}

type RiskBands struct {
	ConservativeBelow float64 `yaml:"conservative_below"`
	AggressiveAbove   float64 `yaml:"aggressive_above"`
}

type ReviewThresholds struct {
	DiversificationTarget float64 `yaml:"diversification_target"`
	RiskReviewAbove       float64 `yaml:"risk_review_above"`
}

type PortfolioTable struct {
	AssetClasses []AssetClassRule `yaml:"asset_classes"`
	RiskBands    RiskBands        `yaml:"risk_bands"`
	Review       ReviewThresholds `yaml:"review"`
}

type EducationTable struct {
	Topics   map[string]domain.EducationTopic `yaml:"topics"`
	Fallback domain.EducationTopic            `yaml:"fallback"`
}

// ParseTables decodes and validates a tables document.
func ParseTables(data []byte) (*Tables, error) {
	t := &Tables{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tables: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTables reads a tables document from disk.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	return ParseTables(data)
}

// DefaultTables returns the tables compiled into the binary.
func DefaultTables() *Tables {
	t, err := ParseTables(defaultTablesYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded tables are invalid: %v", err))
	}
	return t
}

// Validate checks the structural invariants the algorithms rely on.
func (t *Tables) Validate() error {
	if len(t.Tax.Brackets) == 0 {
		return fmt.Errorf("tables: no tax brackets")
	}
	if _, ok := t.Tax.Brackets[t.Tax.DefaultStatus]; !ok {
		return fmt.Errorf("tables: default filing status %q has no brackets", t.Tax.DefaultStatus)
	}
	for status, brackets := range t.Tax.Brackets {
		if len(brackets) == 0 {
			return fmt.Errorf("tables: filing status %q has no brackets", status)
		}
		for i := 1; i < len(brackets); i++ {
			if brackets[i].Threshold <= brackets[i-1].Threshold {
				return fmt.Errorf("tables: %q brackets must be ascending", status)
			}
		}
	}
	if len(t.Tax.Tiers) == 0 {
		return fmt.Errorf("tables: no advice tiers")
	}
	sort.SliceStable(t.Tax.Tiers, func(i, j int) bool {
		return t.Tax.Tiers[i].MinRate > t.Tax.Tiers[j].MinRate
	})
	if t.Tax.ContributionCap401k <= 0 {
		return fmt.Errorf("tables: 401(k) contribution cap must be positive")
	}

	seen := map[domain.AssetClass]bool{}
	for _, rule := range t.Portfolio.AssetClasses {
		seen[rule.Class] = true
		if rule.RiskWeight < 0 || rule.RiskWeight > 1 {
			return fmt.Errorf("tables: risk weight for %q must be within [0,1]", rule.Class)
		}
	}
	for _, class := range domain.AssetClasses {
		if !seen[class] {
			return fmt.Errorf("tables: asset class %q is missing", class)
		}
	}
	if len(t.Portfolio.AssetClasses) != len(domain.AssetClasses) {
		return fmt.Errorf("tables: expected %d asset classes, got %d",
			len(domain.AssetClasses), len(t.Portfolio.AssetClasses))
	}
	if t.Portfolio.RiskBands.ConservativeBelow > t.Portfolio.RiskBands.AggressiveAbove {
		return fmt.Errorf("tables: risk bands overlap")
	}

	if t.Education.Fallback.Title == "" {
		return fmt.Errorf("tables: education fallback needs a title")
	}
	return nil
}

// FilingStatus normalises a caller-supplied status. Unknown values fall back
// to the default status and report defaulted=true.
func (t TaxTable) FilingStatus(raw string) (status domain.FilingStatus, defaulted bool) {
	key := domain.FilingStatus(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := t.Brackets[key]; ok {
		return key, false
	}
	return t.DefaultStatus, true
}

// MarginalRate keeps the rate of the last bracket whose threshold income
// strictly exceeds. This is not the textbook bracket lookup: income inside
// the 22% band of the single table yields 12%.
func (t TaxTable) MarginalRate(status domain.FilingStatus, income float64) float64 {
	rate := t.BaseRate
	for _, b := range t.Brackets[status] {
		if income > b.Threshold {
			rate = b.Rate
		}
	}
	return rate
}

// Recommendations returns a copy of the advice for the first tier rate reaches.
func (t TaxTable) Recommendations(rate float64) []string {
	for _, tier := range t.Tiers {
		if rate >= tier.MinRate {
			return append([]string(nil), tier.Recommendations...)
		}
	}
	last := t.Tiers[len(t.Tiers)-1]
	return append([]string(nil), last.Recommendations...)
}

// Classify returns the first asset class with a keyword contained in label,
// ignoring case.
func (p PortfolioTable) Classify(label string) (domain.AssetClass, bool) {
	l := strings.ToLower(label)
	for _, rule := range p.AssetClasses {
		for _, kw := range rule.Keywords {
			if strings.Contains(l, strings.ToLower(kw)) {
				return rule.Class, true
			}
		}
	}
	return "", false
}

func (p PortfolioTable) riskWeight(class domain.AssetClass) float64 {
	for _, rule := range p.AssetClasses {
		if rule.Class == class {
			return rule.RiskWeight
		}
	}
	return 0
}

// Level maps a risk score onto the three bands. Both breakpoints belong to
// the Moderate band.
func (b RiskBands) Level(score float64) domain.RiskLevel {
	switch {
	case score < b.ConservativeBelow:
		return domain.RiskConservative
	case score > b.AggressiveAbove:
		return domain.RiskAggressive
	default:
		return domain.RiskModerate
	}
}

func (e EducationTable) lookup(key string) (domain.EducationTopic, bool) {
	topic, ok := e.Topics[key]
	if !ok {
		topic = e.Fallback
	}
	topic.KeyPoints = append([]string(nil), topic.KeyPoints...)
	return topic, ok
}

func (e EducationTable) keys() []string {
	keys := make([]string, 0, len(e.Topics))
	for k := range e.Topics {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
