package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-advisor/domain"
)

func TestDefaultTables(t *testing.T) {
	tables := DefaultTables()

	assert.Equal(t, 2024, tables.Tax.Year)
	assert.Equal(t, 23000.0, tables.Tax.ContributionCap401k)
	assert.Len(t, tables.Portfolio.AssetClasses, len(domain.AssetClasses))
	assert.Equal(t, 0.24, tables.Tax.Tiers[0].MinRate)
	assert.Zero(t, tables.Tax.Tiers[len(tables.Tax.Tiers)-1].MinRate)
}

func TestLoadTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	data := strings.Replace(string(defaultTablesYAML), "contribution_cap_401k: 23000", "contribution_cap_401k: 23500", 1)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	assert.Equal(t, 23500.0, tables.Tax.ContributionCap401k)

	svc := NewFinancialService(tables)
	plan, err := svc.AssessTaxEfficiency(domain.TaxInput{Income: 150000, InvestmentAmount: 50000})
	require.NoError(t, err)
	assert.Equal(t, 5170.0, plan.TaxSavings401k)
}

func TestLoadTables_MissingFile(t *testing.T) {
	_, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestParseTables_Invalid(t *testing.T) {
	cases := map[string]string{
		"not yaml":         "tax: [",
		"missing class":    strings.Replace(string(defaultTablesYAML), "class: cash", "class: crypto", 1),
		"bad weight":       strings.Replace(string(defaultTablesYAML), "risk_weight: 0.8", "risk_weight: 1.8", 1),
		"descending":       strings.Replace(string(defaultTablesYAML), "threshold: 47150", "threshold: 1000", 1),
		"no cap":           strings.Replace(string(defaultTablesYAML), "contribution_cap_401k: 23000", "contribution_cap_401k: 0", 1),
		"no fallback":      strings.Replace(string(defaultTablesYAML), "title: Investment Education", "title: \"\"", 1),
		"overlapping band": strings.Replace(string(defaultTablesYAML), "conservative_below: 0.3", "conservative_below: 0.9", 1),
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTables([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestTaxTable_TiersSortedOnValidate(t *testing.T) {
	tables := DefaultTables()
	tables.Tax.Tiers[0], tables.Tax.Tiers[2] = tables.Tax.Tiers[2], tables.Tax.Tiers[0]

	require.NoError(t, tables.Validate())
	assert.Equal(t, 0.24, tables.Tax.Tiers[0].MinRate)
}

func TestPortfolioTable_Classify(t *testing.T) {
	table := DefaultTables().Portfolio

	cases := map[string]domain.AssetClass{
		"US Stocks":               domain.AssetClassStocks,
		"vanguard large cap fund": domain.AssetClassStocks,
		"Municipal Bonds 2030":    domain.AssetClassBonds,
		"Global REITs":            domain.AssetClassRealEstate,
		"Crude OIL":               domain.AssetClassCommodities,
		"12-month CDs":            domain.AssetClassCash,
	}
	for label, want := range cases {
		got, ok := table.Classify(label)
		assert.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}

	_, ok := table.Classify("Bitcoin")
	assert.False(t, ok)
}

func TestRiskBands_Level(t *testing.T) {
	bands := DefaultTables().Portfolio.RiskBands

	assert.Equal(t, domain.RiskConservative, bands.Level(0.299))
	assert.Equal(t, domain.RiskModerate, bands.Level(0.3))
	assert.Equal(t, domain.RiskModerate, bands.Level(0.6))
	assert.Equal(t, domain.RiskAggressive, bands.Level(0.601))
}
