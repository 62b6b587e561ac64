package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidToken          = "AUTH_001" // Token ausente ou inválido
	ErrInsufficientPrivilege = "AUTH_002" // Papel sem permissão

	// Erros de dados
	ErrDatasetNotLoaded = "DATA_001" // Nenhum snapshot carregado ainda
	ErrReportDisabled   = "DATA_002" // Relatório fora de DASHBOARD_REPORTS
	ErrReloadRunning    = "DATA_003" // Recarga já em andamento

	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Parâmetro inválido
	ErrRouteNotFound    = "VAL_002" // Rota inexistente
	ErrMethodNotAllowed = "VAL_003" // Método não aceito na rota

	// Erros do servidor
	ErrInternalServer = "SRV_001" // Erro interno do servidor
	ErrExportFailed   = "SRV_002" // Falha ao gerar a planilha
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrDatasetNotLoaded:      http.StatusServiceUnavailable,
	ErrReportDisabled:        http.StatusNotFound,
	ErrReloadRunning:         http.StatusConflict,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrExportFailed:          http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Status retorna o status HTTP associado ao código
func Status(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(Status(code))
	json.NewEncoder(w).Encode(apiErr)
}
