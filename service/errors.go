package service

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInput marks arguments outside the domain of a calculation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrEmptyPortfolio is returned when holdings add up to zero.
	ErrEmptyPortfolio = errors.New("portfolio is empty")
	// ErrMalformedPortfolio is returned when serialized holdings cannot be parsed.
	ErrMalformedPortfolio = errors.New("malformed portfolio data")
)

func invalidf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type field struct {
	name  string
	value float64
}

// requireFinite reports the first field that is NaN or infinite.
func requireFinite(fields ...field) error {
	for _, f := range fields {
		if !isFinite(f.value) {
			return invalidf("%s must be a finite number", f.name)
		}
	}
	return nil
}

// requireAmount reports the first field above MaxAmount.
func requireAmount(fields ...field) error {
	for _, f := range fields {
		if f.value > MaxAmount {
			return invalidf("%s exceeds the maximum of $%.2f", f.name, MaxAmount)
		}
	}
	return nil
}

// inRange reports whether every result is finite and within MaxResultAmount.
func inRange(values ...float64) bool {
	for _, v := range values {
		if !isFinite(v) || math.Abs(v) > MaxResultAmount {
			return false
		}
	}
	return true
}

func checkRate(name string, percent float64) error {
	if percent < MinRatePercent {
		return invalidf("%s cannot be below %.0f%%", name, MinRatePercent)
	}
	if percent > MaxInterestRate {
		return invalidf("%s exceeds the maximum of %.2f%%", name, MaxInterestRate)
	}
	return nil
}
