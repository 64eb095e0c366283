package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sift/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := logger.New()
	log.SetOutput(&buf)
	return log, &buf
}

func TestLogger_Info(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Info("scanning started")
	assert.Contains(t, buf.String(), "scanning started")
}

func TestLogger_Warn(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Warn("rules file not found")
	assert.Contains(t, buf.String(), "rules file not found")
}

func TestLogger_ErrorUnwrapsZerrMessage(t *testing.T) {
	log, buf := newBufferedLogger(t)

	err := zerr.With(zerr.Wrap(errors.New("EACCES"), "failed to list directory"), "path", "/secret")
	log.Error(err)

	out := buf.String()
	assert.Contains(t, out, "failed to list directory")
	assert.Contains(t, out, "EACCES")
}

func TestLogger_ErrorPlain(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Error(errors.New("plain failure"))
	assert.Contains(t, buf.String(), "plain failure")
}

func TestLogger_DebugGatedByVerbose(t *testing.T) {
	log, buf := newBufferedLogger(t)

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.SetVerbose(true)
	log.Debug("visible")
	assert.Contains(t, buf.String(), "visible")

	log.SetVerbose(false)
	buf.Reset()
	log.Debug("hidden again")
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	log, buf := newBufferedLogger(t)
	log.SetJSON(true)

	log.Info("structured")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "structured", record["msg"])
	assert.Equal(t, "INFO", record["level"])
}
