package tools

import (
	"errors"
	"strings"

	"wealth-advisor/service"
)

const (
	portfolioMalformedMessage = "Unable to analyze portfolio. Please provide portfolio data in JSON format."
	portfolioEmptyMessage     = "Unable to analyze portfolio. The portfolio has no holdings with a value above zero."
)

// describeError turns an engine error into something the advisor can say.
func describeError(err error) string {
	switch {
	case errors.Is(err, service.ErrMalformedPortfolio):
		return portfolioMalformedMessage
	case errors.Is(err, service.ErrEmptyPortfolio):
		return portfolioEmptyMessage
	case errors.Is(err, service.ErrInvalidInput):
		detail := strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")
		return "I couldn't run that calculation: " + detail + ". Please check the numbers and try again."
	default:
		return "Something went wrong with that calculation. Please try again."
	}
}
