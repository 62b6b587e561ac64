package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("report"))
	assert.True(t, isRelevantField("route"))
	assert.True(t, isRelevantField("dataset_id"))
	assert.True(t, isRelevantField("orders_dropped"))
	assert.False(t, isRelevantField("user_agent"))
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.DebugLevel, Setup("debug"))
	assert.Equal(t, logrus.InfoLevel, Setup("qualquer"))
}

func TestAnnotate(t *testing.T) {
	ctx, fields := WithRequestFields(context.Background())

	Annotate(ctx, "report", "geo")
	Annotate(ctx, "limit", 5)
	Annotate(ctx, "limit", 3)

	got := fields.Fields()
	assert.Equal(t, Fields{"report": "geo", "limit": 3}, got)

	got["report"] = "alterado"
	assert.Equal(t, "geo", fields.Fields()["report"], "Fields retorna uma cópia")
}

func TestAnnotate_WithoutRequestFields(t *testing.T) {
	assert.NotPanics(t, func() {
		Annotate(context.Background(), "report", "geo")
		Annotate(nil, "report", "geo")
	})
}

func TestForContext(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	hook := test.NewGlobal()
	defer hook.Reset()

	ctx, id := WithCorrelationID(context.Background())
	ForContext(ctx).WithField("dataset_id", "snap01").Info("ok")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, id, entry.Data["correlation_id"])
	assert.Equal(t, "snap01", entry.Data["dataset_id"])

	ForContext(context.Background()).Warn("sem correlação")
	assert.NotContains(t, hook.LastEntry().Data, "correlation_id")
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	hook := test.NewGlobal()
	defer hook.Reset()

	L.WithFields(Fields{"report": "geo", "user_agent": "curl"}).Info("ok")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "geo", entry.Data["report"])
	assert.NotContains(t, entry.Data, "user_agent")
}
