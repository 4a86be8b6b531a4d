package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkonate/boutik-api/pkg/logger"
)

func TestNew_NiveauInconnuRetombeSurInfo(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "verbose"})
	assert.Equal(t, zerolog.InfoLevel, l.Zerolog().GetLevel())

	l = logger.New(logger.Config{Env: "production", Level: "debug"})
	assert.Equal(t, zerolog.DebugLevel, l.Zerolog().GetLevel())
}

func TestNew_EstampilleLeService(t *testing.T) {
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "boutik-api"})

	var buf bytes.Buffer
	zl := l.Zerolog().Output(&buf)
	zl.Info().Msg("ping")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "boutik-api", event["service"])
	assert.Equal(t, "ping", event["message"])
}
