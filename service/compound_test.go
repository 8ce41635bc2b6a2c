package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wealth-advisor/domain"
)

func TestCompound_AnnualCompounding(t *testing.T) {
	result, err := Compound(domain.CompoundInput{
		Principal:         10000,
		AnnualRatePercent: 7,
		Years:             30,
		CompoundsPerYear:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, 76122.55, result.FutureValue)
	assert.Equal(t, 66122.55, result.InterestEarned)
	assert.Equal(t, 7.0, result.EffectiveAnnualRatePercent)
}

func TestCompound_DefaultsToMonthly(t *testing.T) {
	result, err := Compound(domain.CompoundInput{
		Principal:         10000,
		AnnualRatePercent: 7,
		Years:             1,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, result.CompoundsPerYear)
	assert.Equal(t, 7.23, result.EffectiveAnnualRatePercent)
	assert.Greater(t, result.EffectiveAnnualRatePercent, result.AnnualRatePercent)
	assert.Equal(t, 10722.9, result.FutureValue)
}

func TestCompound_ZeroRateIdentity(t *testing.T) {
	for _, years := range []float64{0, 1, 17, 45.5} {
		result, err := Compound(domain.CompoundInput{Principal: 1234.56, Years: years})
		require.NoError(t, err)
		assert.Equal(t, 1234.56, result.FutureValue, "years=%v", years)
		assert.Zero(t, result.InterestEarned)
	}
}

func TestCompound_MonotonicInRateAndYears(t *testing.T) {
	const principal = 2500.0

	for years := 0.0; years <= 40; years += 5 {
		previous := -1.0
		for rate := 0.0; rate <= 15; rate += 0.5 {
			result, err := Compound(domain.CompoundInput{Principal: principal, AnnualRatePercent: rate, Years: years})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.FutureValue, previous, "rate=%v years=%v", rate, years)
			assert.GreaterOrEqual(t, result.FutureValue, principal)
			previous = result.FutureValue
		}
	}

	for rate := 0.0; rate <= 15; rate += 3 {
		previous := -1.0
		for years := 0.0; years <= 40; years++ {
			result, err := Compound(domain.CompoundInput{Principal: principal, AnnualRatePercent: rate, Years: years})
			require.NoError(t, err)
			assert.GreaterOrEqual(t, result.FutureValue, previous, "rate=%v years=%v", rate, years)
			previous = result.FutureValue
		}
	}
}

func TestCompound_NegativeRateDecays(t *testing.T) {
	result, err := Compound(domain.CompoundInput{Principal: 1000, AnnualRatePercent: -5, Years: 10})
	require.NoError(t, err)
	assert.Less(t, result.FutureValue, 1000.0)
	assert.Negative(t, result.InterestEarned)
}

func TestCompound_InvalidInput(t *testing.T) {
	cases := map[string]domain.CompoundInput{
		"negative principal":  {Principal: -1, AnnualRatePercent: 5, Years: 1},
		"negative years":      {Principal: 100, AnnualRatePercent: 5, Years: -1},
		"negative frequency":  {Principal: 100, AnnualRatePercent: 5, Years: 1, CompoundsPerYear: -4},
		"rate below -100":     {Principal: 100, AnnualRatePercent: -150, Years: 1},
		"NaN principal":       {Principal: math.NaN(), AnnualRatePercent: 5, Years: 1},
		"infinite years":      {Principal: 100, AnnualRatePercent: 5, Years: math.Inf(1)},
		"principal too large": {Principal: 1e18, AnnualRatePercent: 5, Years: 1},
		"result too large":    {Principal: 1e6, AnnualRatePercent: 1000, Years: 50},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Compound(input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
