package service

import (
	"math"

	"wealth-advisor/domain"
)

// ProjectRetirement projects savings at retirement against the nest egg the
// 4% rule requires for the inflation-adjusted desired income.
func ProjectRetirement(input domain.RetirementInput) (domain.RetirementProjection, error) {
	if err := validateRetirement(input); err != nil {
		return domain.RetirementProjection{}, err
	}

	years := input.RetirementAge - input.CurrentAge
	months := years * MonthsPerYear

	savings, err := Compound(domain.CompoundInput{
		Principal:         input.CurrentSavings,
		AnnualRatePercent: input.ExpectedReturnPercent,
		Years:             float64(years),
		CompoundsPerYear:  DefaultCompoundsPerYear,
	})
	if err != nil {
		return domain.RetirementProjection{}, err
	}
	futureSavings := savings.FutureValue

	// anualidad ordinaria; con tasa 0 el límite es la suma simple
	monthlyRate := input.ExpectedReturnPercent / 100 / MonthsPerYear
	growth := math.Pow(1+monthlyRate, float64(months)) - 1
	var futureContributions float64
	if monthlyRate == 0 || growth == 0 {
		futureContributions = input.MonthlyContribution * float64(months)
	} else {
		futureContributions = input.MonthlyContribution * growth / monthlyRate
	}

	total := futureSavings + futureContributions
	adjustedIncome := input.DesiredAnnualIncome *
		math.Pow(1+input.InflationRatePercent/100, float64(years))
	required := adjustedIncome * WithdrawalMultiplier
	shortfall := required - total

	if !inRange(total, required) {
		return domain.RetirementProjection{}, invalidf("projection is out of range")
	}

	monthlyShortfall := 0.0
	if shortfall > 0 && months > 0 {
		monthlyShortfall = roundTo2Decimals(shortfall / float64(months))
	}

	return domain.RetirementProjection{
		CurrentAge:               input.CurrentAge,
		RetirementAge:            input.RetirementAge,
		YearsToRetirement:        years,
		CurrentSavings:           input.CurrentSavings,
		MonthlyContribution:      input.MonthlyContribution,
		ExpectedReturnPercent:    input.ExpectedReturnPercent,
		InflationRatePercent:     input.InflationRatePercent,
		DesiredAnnualIncome:      input.DesiredAnnualIncome,
		TotalContributions:       roundTo2Decimals(input.MonthlyContribution * float64(months)),
		FutureSavingsValue:       roundTo2Decimals(futureSavings),
		FutureContributionsValue: roundTo2Decimals(futureContributions),
		TotalProjectedSavings:    roundTo2Decimals(total),
		InflationAdjustedIncome:  roundTo2Decimals(adjustedIncome),
		RequiredSavings:          roundTo2Decimals(required),
		Shortfall:                roundTo2Decimals(shortfall),
		OnTrack:                  shortfall <= 0,
		MonthlyShortfall:         monthlyShortfall,
	}, nil
}

func validateRetirement(input domain.RetirementInput) error {
	if err := requireFinite(
		field{"current savings", input.CurrentSavings},
		field{"monthly contribution", input.MonthlyContribution},
		field{"expected return", input.ExpectedReturnPercent},
		field{"desired income", input.DesiredAnnualIncome},
		field{"inflation rate", input.InflationRatePercent},
	); err != nil {
		return err
	}
	if input.CurrentAge < 0 || input.CurrentAge > MaxAge {
		return invalidf("current age %d is out of range", input.CurrentAge)
	}
	if input.RetirementAge > MaxAge {
		return invalidf("retirement age %d is out of range", input.RetirementAge)
	}
	if input.RetirementAge < input.CurrentAge {
		return invalidf("retirement age %d is before current age %d",
			input.RetirementAge, input.CurrentAge)
	}
	if input.CurrentSavings < 0 {
		return invalidf("current savings cannot be negative")
	}
	if input.MonthlyContribution < 0 {
		return invalidf("monthly contribution cannot be negative")
	}
	if input.DesiredAnnualIncome < 0 {
		return invalidf("desired income cannot be negative")
	}
	if err := requireAmount(
		field{"current savings", input.CurrentSavings},
		field{"monthly contribution", input.MonthlyContribution},
		field{"desired income", input.DesiredAnnualIncome},
	); err != nil {
		return err
	}
	if err := checkRate("expected return", input.ExpectedReturnPercent); err != nil {
		return err
	}
	return checkRate("inflation rate", input.InflationRatePercent)
}
