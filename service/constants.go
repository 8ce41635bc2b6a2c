package service

const (
	MaxLoanAmount   = 1_000_000_000.0     // 1 billón
	MaxAmount       = 1_000_000_000_000.0 // tope para montos de entrada
	MaxInterestRate = 1000.0              // 1000% anual
	MinRatePercent  = -100.0              // pérdida total
	MaxTermYears    = 50
	MinTermYears    = 1
	MaxAge          = 150

	// resultados por encima de esto se rechazan en vez de informarse
	MaxResultAmount = 1_000_000_000_000_000.0

	MonthsPerYear               = 12
	DefaultCompoundsPerYear     = 12
	DefaultInflationRatePercent = 2.5

	// regla del 4%: ahorro requerido = 25 × ingreso anual
	WithdrawalMultiplier = 25.0
)
