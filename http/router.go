package http

import (
	"net/http"

	"go.uber.org/zap"

	"wealth-advisor/metrics"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Calc    *CalcHandler
	Tools   *ToolHandler
	Info    *InfoHandler
	Limiter *RateLimiter
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// NewRouter wires the advisor routes. Calculation and tool routes are rate
// limited; every route is instrumented.
func NewRouter(h Handlers) http.Handler {
	logger := h.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	mux := http.NewServeMux()
	open := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, InstrumentMiddleware(pattern, h.Metrics, logger, fn))
	}
	limited := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, InstrumentMiddleware(pattern, h.Metrics, logger,
			RateLimitMiddleware(h.Limiter, h.Metrics, logger, fn)))
	}

	limited("/calc/compound", h.Calc.Compound)
	limited("/calc/retirement", h.Calc.Retirement)
	limited("/calc/mortgage", h.Calc.Mortgage)
	limited("/calc/portfolio", h.Calc.Portfolio)
	limited("/calc/tax", h.Calc.Tax)
	limited("/tools/{name}", h.Tools.Invoke)

	open("/education", h.Calc.Education)
	open("/tools", h.Tools.List)
	open("/personas", h.Info.Personas)
	open("/history", h.Info.History)
	open("/health", h.Info.Health)

	if h.Metrics != nil {
		mux.Handle("/metrics", h.Metrics.Handler())
	}
	return mux
}
