package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-advisor/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestCompoundCommand(t *testing.T) {
	out, err := run(t, "compound", "--principal", "10000", "--rate", "7", "--years", "30", "--compounds", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "- Future Value: $76,122.55")
}

func TestCompoundCommand_JSON(t *testing.T) {
	out, err := run(t, "compound", "--principal", "10000", "--rate", "7", "--years", "1", "--json")
	require.NoError(t, err)

	var result domain.CompoundingResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, 12, result.CompoundsPerYear)
	assert.Equal(t, 10722.9, result.FutureValue)
}

func TestCompoundCommand_MissingFlag(t *testing.T) {
	_, err := run(t, "compound", "--principal", "10000")
	assert.Error(t, err)
}

func TestRetireCommand(t *testing.T) {
	out, err := run(t, "retire", "--age", "30", "--monthly", "1000", "--income", "80000")
	require.NoError(t, err)
	assert.Contains(t, out, "- Years to Retirement: 35")

	out, err = run(t, "retire", "--age", "30", "--retirement-age", "60", "--income", "80000", "--json")
	require.NoError(t, err)
	var p domain.RetirementProjection
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, 30, p.YearsToRetirement)
	assert.Equal(t, 7.0, p.ExpectedReturnPercent)
}

func TestMortgageCommand(t *testing.T) {
	out, err := run(t, "mortgage", "--amount", "300000", "--rate", "6.5", "--down", "60000")
	require.NoError(t, err)
	assert.Contains(t, out, "- Monthly Payment: $1,516.96")

	_, err = run(t, "mortgage", "--amount", "100", "--rate", "5", "--down", "500", "--json")
	assert.Error(t, err)
}

func TestPortfolioCommand(t *testing.T) {
	out, err := run(t, "portfolio", `{"US Stocks": 60000, "US Bonds": 40000}`)
	require.NoError(t, err)
	assert.Contains(t, out, "- Risk Level: Moderate (Score: 0.6)")

	path := filepath.Join(t.TempDir(), "holdings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Cash": 100}`), 0o600))
	out, err = run(t, "portfolio", "--file", path, "--json")
	require.NoError(t, err)
	var a domain.PortfolioAnalysis
	require.NoError(t, json.Unmarshal([]byte(out), &a))
	assert.Equal(t, domain.RiskConservative, a.RiskLevel)

	out, err = run(t, "portfolio", "garbage")
	require.NoError(t, err)
	assert.Contains(t, out, "Please provide portfolio data in JSON format.")

	_, err = run(t, "portfolio")
	assert.Error(t, err)
}

func TestTaxCommand(t *testing.T) {
	out, err := run(t, "tax", "--income", "150000", "--status", "married", "--invest", "20000")
	require.NoError(t, err)
	assert.Contains(t, out, "- Filing Status: Married")
	assert.Contains(t, out, "- Marginal Tax Rate: 12.0%")
}

func TestLearnCommand(t *testing.T) {
	out, err := run(t, "learn")
	require.NoError(t, err)
	assert.Contains(t, out, "compound_interest\n")

	out, err = run(t, "learn", "risk", "tolerance")
	require.NoError(t, err)
	assert.Contains(t, out, "Understanding Risk Tolerance:")
}

func TestToolsCommand(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "mortgage_analysis: Analyze mortgage options and payments.")
	assert.Contains(t, out, "  down_payment (number, optional) Down payment amount")
}

func TestPersonasCommand(t *testing.T) {
	t.Setenv("ADVISOR_ADVISOR_PERSONA", "coach_mike")

	out, err := run(t, "personas")
	require.NoError(t, err)
	assert.Contains(t, out, "* coach_mike: Coach Mike")
	assert.Contains(t, out, "  marcus_chen: Marcus Chen")
}

func TestUnknownPersonaFails(t *testing.T) {
	t.Setenv("ADVISOR_ADVISOR_PERSONA", "nobody")

	_, err := run(t, "personas")
	assert.Error(t, err)
}

func TestTablesPath(t *testing.T) {
	_, err := run(t, "tax", "--income", "1", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("ADVISOR_ADVISOR_TABLES_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = run(t, "tax", "--income", "1")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestNewServer(t *testing.T) {
	a := &app{logLevel: "error"}
	require.NoError(t, a.init())
	defer a.close()

	server, stop := a.newServer()
	defer stop()
	assert.Equal(t, ":8080", server.Addr)

	w := httptest.NewRecorder()
	server.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
