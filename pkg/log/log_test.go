package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	original := logrus.StandardLogger().Out
	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	SetupTestLogger()
	t.Cleanup(func() { logrus.SetOutput(original) })

	return buf
}

func TestWithCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_IncludesCorrelationID(t *testing.T) {
	buf := captureOutput(t)
	ctx, id := WithCorrelationID(context.Background())

	ForContext(ctx).Info("relatório gerado")

	assert.Contains(t, buf.String(), id)
	assert.Contains(t, buf.String(), "relatório gerado")
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"offer_id":     "OFF1",
		"record_count": 3,
		"irrelevant":   "x",
	}).Info("filtrando")

	out := buf.String()
	assert.Contains(t, out, "offer_id=OFF1")
	assert.Contains(t, out, "record_count=3")
	assert.NotContains(t, out, "irrelevant")
}

func TestWithFields_ProductionKeepsEverything(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"irrelevant": "x"}).Info("tudo")

	assert.Contains(t, buf.String(), "irrelevant=x")
}

func TestSetLevel(t *testing.T) {
	original := logrus.GetLevel()
	t.Cleanup(func() { logrus.SetLevel(original) })

	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{name: "nível válido", level: "warn", expected: logrus.WarnLevel},
		{name: "maiúsculas são aceitas", level: "DEBUG", expected: logrus.DebugLevel},
		{name: "nível inválido usa info", level: "verboso", expected: logrus.InfoLevel},
		{name: "vazio usa info", level: "", expected: logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SetLevel(tt.level))
			assert.Equal(t, tt.expected, logrus.GetLevel())
		})
	}
}
