package utils

import (
	"fmt"
	"strings"
	"time"
)

// Formatos aceitos para as colunas de data dos pedidos, do mais comum para o menos comum
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp converte o valor textual de uma coluna de data em UTC
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("formato de data não reconhecido: %q", value)
}

// StartOfMonth retorna o primeiro instante do mês de t em UTC
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
