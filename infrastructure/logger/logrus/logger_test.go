package logrus

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelsAndFields(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.DebugLevel)
	logger := Wrap(base)

	logger.Debug("debug message", nil)
	logger.Info("Aggregation completed", map[string]interface{}{"items": 42})
	logger.Warn("Source fetch failed", map[string]interface{}{"source": "Punch"})
	logger.Error("Aggregation failed", map[string]interface{}{"error": "boom"})

	entries := hook.AllEntries()
	require.Len(t, entries, 4)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, 42, entries[1].Data["items"])
	assert.Equal(t, logrus.WarnLevel, entries[2].Level)
	assert.Equal(t, "Punch", entries[2].Data["source"])
	assert.Equal(t, logrus.ErrorLevel, entries[3].Level)
	assert.Equal(t, "Aggregation failed", entries[3].Message)
}

func TestLogger_RespectsLevel(t *testing.T) {
	base, hook := test.NewNullLogger()
	base.SetLevel(logrus.WarnLevel)
	logger := Wrap(base)

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "shown", hook.LastEntry().Message)
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Output: &buf})

	logger.Info("Server starting", map[string]interface{}{"port": "10000"})

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Server starting", line["msg"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "10000", line["port"])
}

func TestNew_WritesRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	logger := New(Options{Level: "debug", File: path})

	logger.Debug("to file", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"WARN", logrus.WarnLevel},
		{" error ", logrus.ErrorLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}
