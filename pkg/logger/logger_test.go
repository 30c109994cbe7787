package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/jhoicas/holding-tracker/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "debug", Service: "holding-tracker"}, &buf)

	l.Named("usecase").Info().Int64("company_id", 7).Msg("empresa creada")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "holding-tracker", entry["service"])
	assert.Equal(t, "usecase", entry["component"])
	assert.Equal(t, float64(7), entry["company_id"])
	assert.Equal(t, "empresa creada", entry["message"])
}

func TestNewWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Level: "WARN"}, &buf)

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { logger.Nop().Error().Msg("nada") })
}
