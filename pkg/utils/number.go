package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundToUnit arredonda para a unidade monetária inteira mais próxima
func RoundToUnit(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	// evita "-0" na exibição
	return math.Round(f) + 0
}
