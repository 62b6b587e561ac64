package domain

import "strings"

// Colunas do arquivo de clientes
const (
	CustomerIDColumn            = "customer_id"
	CustomerUniqueIDColumn      = "customer_unique_id"
	CustomerZipCodePrefixColumn = "customer_zip_code_prefix"
	CustomerCityColumn          = "customer_city"
	CustomerStateColumn         = "customer_state"
)

type Customer struct {
	CustomerID    string `json:"customer_id"`
	UniqueID      string `json:"customer_unique_id"`
	ZipCodePrefix string `json:"customer_zip_code_prefix"`
	City          string `json:"customer_city"`
	State         string `json:"customer_state"`
}

// NormalizeZipCodePrefix remove espaços e zeros à esquerda para que "01037" e "1037" sejam o mesmo prefixo
func NormalizeZipCodePrefix(prefix string) string {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return ""
	}

	trimmed := strings.TrimLeft(prefix, "0")
	if trimmed == "" {
		return "0"
	}

	return trimmed
}
