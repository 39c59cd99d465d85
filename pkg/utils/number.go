package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um float para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicrosToUnits converte valores monetários em micro-unidades (1.000.000 = 1 unidade)
// para o valor em unidades da moeda
func MicrosToUnits(micros int64) float64 {
	return float64(micros) / 1_000_000
}
