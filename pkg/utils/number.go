package utils

import "github.com/shopspring/decimal"

// MoneyToFloat arredonda um valor monetário para duas casas decimais e converte para float64
func MoneyToFloat(value decimal.Decimal) float64 {
	if value.IsZero() {
		return 0
	}

	return value.Round(2).InexactFloat64()
}
