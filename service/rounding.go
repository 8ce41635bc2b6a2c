package service

import "github.com/shopspring/decimal"

// round rounds half away from zero on the shortest decimal form of value,
// so 1.005 becomes 1.01 instead of the binary-float 1.00.
func round(value float64, places int32) float64 {
	if !isFinite(value) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return round(value, 2)
}
