package cleaning

import (
	"errors"
	"fmt"
)

// ErrInvalidTimestamp indica uma coluna de data que não pôde ser convertida
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// TimestampError identifica o pedido e a coluna com data inválida
type TimestampError struct {
	OrderID string
	Column  string
	Value   string
	Err     error
}

// Error implementa a interface error
func (e *TimestampError) Error() string {
	return fmt.Sprintf("%s: pedido %s, coluna %s, valor %q", ErrInvalidTimestamp, e.OrderID, e.Column, e.Value)
}

// Unwrap permite errors.Is(err, ErrInvalidTimestamp)
func (e *TimestampError) Unwrap() error {
	return ErrInvalidTimestamp
}

// Cause retorna o erro original da conversão
func (e *TimestampError) Cause() error {
	return e.Err
}
