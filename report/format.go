package report

import (
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// unstated replaces amounts that cannot be written as a dollar figure.
const unstated = "an amount too large to state"

// maxMinorUnits keeps the int64 conversion below exact int64 range.
var maxMinorUnits = decimal.NewFromInt(math.MaxInt64 / 2)

// usd formats an amount as US dollars, e.g. "$1,234.56". Amounts beyond
// what go-money holds in int64 minor units are grouped from the decimal
// string with the same currency formatter.
func usd(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return unstated
	}
	cur := money.GetCurrency(money.USD)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	minor := decimal.NewFromFloat(amount).Mul(factor).Round(0)
	if minor.Abs().LessThan(maxMinorUnits) {
		return money.New(minor.IntPart(), money.USD).Display()
	}
	return formatLarge(cur.Formatter(), minor.Div(factor))
}

func formatLarge(f *money.Formatter, amount decimal.Decimal) string {
	digits := amount.Abs().StringFixed(int32(f.Fraction))
	whole, frac := digits, ""
	if i := strings.IndexByte(digits, '.'); i >= 0 {
		whole, frac = digits[:i], digits[i+1:]
	}
	if f.Thousand != "" {
		for i := len(whole) - 3; i > 0; i -= 3 {
			whole = whole[:i] + f.Thousand + whole[i:]
		}
	}
	if frac != "" {
		whole += f.Decimal + frac
	}
	out := strings.Replace(f.Template, "1", whole, 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if amount.IsNegative() {
		out = "-" + out
	}
	return out
}

// number prints a float the way a person would say it: no trailing zeros,
// but whole numbers keep one decimal ("7.0").
func number(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func bullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
