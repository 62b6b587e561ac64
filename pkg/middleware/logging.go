package middleware

import (
	"fmt"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/vfg2006/ecommerce-dashboard/pkg/apiErrors"
	"github.com/vfg2006/ecommerce-dashboard/pkg/log"
)

// slowRequest é o tempo a partir do qual uma requisição bem sucedida é registrada como aviso
const slowRequest = 500 * time.Millisecond

// LoggingMiddleware gera o correlation_id e registra uma linha ao fim de cada requisição
// com rota, status, duração e os campos anotados pelos handlers (report, limit, dataset_id).
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, correlationID := log.WithCorrelationID(r.Context())
			ctx, annotations := log.WithRequestFields(ctx)

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			startTime := time.Now()

			next.ServeHTTP(rec, r.WithContext(ctx))

			elapsed := time.Since(startTime)

			fields := annotations.Fields()
			fields["correlation_id"] = correlationID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			fields["status_code"] = rec.status
			fields["duration_ms"] = elapsed.Milliseconds()
			fields["bytes"] = rec.written
			if r.URL.RawQuery != "" {
				fields["query"] = r.URL.RawQuery
			}

			logger := log.L.WithFields(fields)
			switch {
			case rec.status >= http.StatusInternalServerError:
				logger.Error("Requisição finalizada com erro")
			case rec.status >= http.StatusBadRequest:
				logger.Warn("Requisição rejeitada")
			case elapsed > slowRequest:
				logger.Warn("Requisição lenta")
			default:
				logger.Info("Requisição finalizada")
			}
		})
	}
}

// statusRecorder guarda o status e o tamanho da resposta para o log de conclusão
type statusRecorder struct {
	http.ResponseWriter
	status      int
	written     int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	s.wroteHeader = true
	n, err := s.ResponseWriter.Write(b)
	s.written += n
	return n, err
}

// LogPanicMiddleware recupera panics dos handlers e responde SRV_001.
// http.ErrAbortHandler é repassado para o servidor abortar a conexão.
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := debug.Stack()
				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       fmt.Sprint(recovered),
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("Panic ao atender requisição")

				// Em desenvolvimento a pilha some dos campos, então vai direto para o stderr
				if log.IsDevelopment() {
					fmt.Fprintf(os.Stderr, "\n=== STACK TRACE ===\n%s\n", stack)
				}

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
