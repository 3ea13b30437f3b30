package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/textable/internal/logging"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		debug     bool
		wantDebug bool
	}{
		"info":  {debug: false, wantDebug: false},
		"debug": {debug: true, wantDebug: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			logger := logging.New(tt.debug, &buf, logging.Text)
			logger.Debug("hidden unless debug")
			logger.Warn("always shown", "option", "align")

			out := buf.String()
			assert.Contains(t, out, "level=WARN")
			assert.Contains(t, out, "option=align")
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("hidden unless debug")))
		})
	}
}

func TestNewJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logging.New(false, &buf, logging.JSON).Warn("unknown option ignored", "option", "colour")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "unknown option ignored", rec["msg"])
	assert.Equal(t, "colour", rec["option"])
}

func TestNewUnknownFormatFallsBackToText(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logging.New(false, &buf, logging.Format("xml")).Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}
