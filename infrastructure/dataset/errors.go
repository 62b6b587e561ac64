package dataset

import (
	"errors"
	"fmt"
)

// Erros de carregamento
var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidNumber = errors.New("invalid number")
	ErrMissingFile   = errors.New("missing dataset file")
)

// ParseError identifica o valor numérico que não pôde ser convertido
type ParseError struct {
	Table  string
	Line   int
	Column string
	Value  string
	Err    error
}

// Error implementa a interface error
func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: tabela %s, linha %d, coluna %s, valor %q", e.Err, e.Table, e.Line, e.Column, e.Value)
	}
	return fmt.Sprintf("%s: tabela %s, coluna %s, valor %q", e.Err, e.Table, e.Column, e.Value)
}

// Unwrap retorna o erro base
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError cria um ParseError para um número inválido
func NewParseError(table string, line int, column, value string) *ParseError {
	return &ParseError{
		Table:  table,
		Line:   line,
		Column: column,
		Value:  value,
		Err:    ErrInvalidNumber,
	}
}
