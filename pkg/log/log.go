// Package log encapsula o logrus com correlation_id por requisição e campos
// que os handlers anotam para o log de conclusão da requisição.
package log

import (
	"context"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Fields é um alias para logrus.Fields
type Fields logrus.Fields

// Logger expõe só o que o serviço usa do logrus
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
}

type contextKey string

const (
	// CorrelationIDKey guarda o ID de correlação no contexto
	CorrelationIDKey contextKey = "correlation_id"

	requestFieldsKey   contextKey = "request_fields"
	correlationIDField            = "correlation_id"
)

type logger struct {
	entry *logrus.Entry
}

// L é a instância global, recriada por Setup
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// IsDevelopment retorna verdadeiro se estamos em ambiente de desenvolvimento
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development" || env == "dev"
}

// Setup configura o formato de texto e o nível de log. Nível inválido cai para info.
func Setup(level string) logrus.Level {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	return logLevel
}

// isRelevantField indica os campos mantidos nos logs de desenvolvimento
func isRelevantField(key string) bool {
	switch key {
	case correlationIDField, "method", "path", "status_code", "duration_ms", "error", "route", "report", "limit":
		return true
	}
	return strings.HasPrefix(key, "dataset_") || strings.HasPrefix(key, "orders_")
}

func (l *logger) WithField(key string, value any) Logger {
	if IsDevelopment() && !isRelevantField(key) {
		return l
	}
	return &logger{entry: l.entry.WithField(key, value)}
}

// WithFields descarta em desenvolvimento os campos fora de isRelevantField
func (l *logger) WithFields(fields Fields) Logger {
	kept := make(logrus.Fields, len(fields))
	for k, v := range fields {
		if !IsDevelopment() || isRelevantField(k) {
			kept[k] = v
		}
	}

	if len(kept) == 0 {
		return l
	}
	return &logger{entry: l.entry.WithFields(kept)}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

func (l *logger) Info(args ...any)  { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)  { l.entry.Warn(args...) }
func (l *logger) Error(args ...any) { l.entry.Error(args...) }

// WithCorrelationID adiciona um ID de correlação ao contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

// GetCorrelationID obtém o ID de correlação do contexto
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// ForContext cria um logger com o ID de correlação do contexto
func ForContext(ctx context.Context) Logger {
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		return L.WithField(correlationIDField, correlationID)
	}
	return L
}

// RequestFields acumula os campos anotados pelos handlers durante uma requisição
type RequestFields struct {
	mu     sync.Mutex
	fields Fields
}

// WithRequestFields prepara o contexto para receber anotações via Annotate
func WithRequestFields(ctx context.Context) (context.Context, *RequestFields) {
	rf := &RequestFields{fields: Fields{}}
	return context.WithValue(ctx, requestFieldsKey, rf), rf
}

// Annotate grava um campo no log de conclusão da requisição.
// Sem WithRequestFields no contexto a chamada não tem efeito.
func Annotate(ctx context.Context, key string, value any) {
	if ctx == nil {
		return
	}

	rf, ok := ctx.Value(requestFieldsKey).(*RequestFields)
	if !ok {
		return
	}

	rf.mu.Lock()
	rf.fields[key] = value
	rf.mu.Unlock()
}

// Fields retorna uma cópia dos campos anotados
func (rf *RequestFields) Fields() Fields {
	rf.mu.Lock()
	defer rf.mu.Unlock()

	copied := make(Fields, len(rf.fields))
	for k, v := range rf.fields {
		copied[k] = v
	}
	return copied
}
