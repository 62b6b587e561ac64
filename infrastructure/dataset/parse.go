package dataset

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePaymentValue converte payment_value e rejeita valores negativos
func ParsePaymentValue(value string) (decimal.Decimal, bool) {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil || parsed.IsNegative() {
		return decimal.Zero, false
	}
	return parsed, true
}

// ParseInt converte colunas inteiras como payment_sequential
func ParseInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// ParseFloat converte latitude e longitude
func ParseFloat(value string) (float64, bool) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}
