package service

import (
	"math"

	"wealth-advisor/domain"
)

// Compound calculates the future value of a lump sum compounded
// CompoundsPerYear times a year. A zero CompoundsPerYear means monthly.
func Compound(input domain.CompoundInput) (domain.CompoundingResult, error) {
	n := input.CompoundsPerYear
	if n == 0 {
		n = DefaultCompoundsPerYear
	}

	if err := requireFinite(
		field{"principal", input.Principal},
		field{"annual rate", input.AnnualRatePercent},
		field{"years", input.Years},
	); err != nil {
		return domain.CompoundingResult{}, err
	}
	if input.Principal < 0 {
		return domain.CompoundingResult{}, invalidf("principal cannot be negative")
	}
	if err := requireAmount(field{"principal", input.Principal}); err != nil {
		return domain.CompoundingResult{}, err
	}
	if input.Years < 0 {
		return domain.CompoundingResult{}, invalidf("years cannot be negative")
	}
	if n < 1 {
		return domain.CompoundingResult{}, invalidf("compounds per year must be at least 1")
	}
	if err := checkRate("annual rate", input.AnnualRatePercent); err != nil {
		return domain.CompoundingResult{}, err
	}

	growth := 1 + input.AnnualRatePercent/100/float64(n)
	amount := input.Principal * math.Pow(growth, float64(n)*input.Years)
	effective := (math.Pow(growth, float64(n)) - 1) * 100

	if !inRange(amount) || !isFinite(effective) {
		return domain.CompoundingResult{}, invalidf("future value is out of range")
	}

	return domain.CompoundingResult{
		Principal:                  input.Principal,
		AnnualRatePercent:          input.AnnualRatePercent,
		Years:                      input.Years,
		CompoundsPerYear:           n,
		FutureValue:                roundTo2Decimals(amount),
		InterestEarned:             roundTo2Decimals(amount - input.Principal),
		EffectiveAnnualRatePercent: roundTo2Decimals(effective),
	}, nil
}
