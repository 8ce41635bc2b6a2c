package http

import (
	"io"
	"net/http"

	"wealth-advisor/domain"
	"wealth-advisor/service"
	"wealth-advisor/tools"
)

// CalcHandler exposes each engine operation as a JSON endpoint.
type CalcHandler struct {
	service  *service.FinancialService
	defaults tools.Defaults
}

func NewCalcHandler(service *service.FinancialService, defaults tools.Defaults) *CalcHandler {
	return &CalcHandler{service: service, defaults: defaults}
}

func (h *CalcHandler) Compound(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	input := domain.CompoundInput{CompoundsPerYear: h.defaults.CompoundsPerYear}
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Compound(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalcHandler) Retirement(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	input := domain.RetirementInput{
		RetirementAge:         h.defaults.RetirementAge,
		ExpectedReturnPercent: h.defaults.ExpectedReturn,
		InflationRatePercent:  h.defaults.InflationRate,
	}
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.ProjectRetirement(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalcHandler) Mortgage(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.MortgageInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.Amortize(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Portfolio takes the holdings object itself as the body.
func (h *CalcHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := h.service.AnalyzePortfolioJSON(string(body))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalcHandler) Tax(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var input domain.TaxInput
	if !decodeBody(w, r, &input) {
		return
	}

	result, err := h.service.AssessTaxEfficiency(input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CalcHandler) Education(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		writeJSON(w, http.StatusOK, map[string][]string{"topics": h.service.Topics()})
		return
	}
	writeJSON(w, http.StatusOK, h.service.Education(topic))
}
