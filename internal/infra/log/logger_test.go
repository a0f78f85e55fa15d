package logs

import (
	"log/slog"
	"testing"

	"taskhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tc := range testCases {
		got, err := parseLogLevel(tc.input)
		if tc.wantErr {
			assert.Error(t, err, "level %q", tc.input)
			continue
		}
		require.NoError(t, err, "level %q", tc.input)
		assert.Equal(t, tc.want, got, "level %q", tc.input)
	}
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	cfg.Env.Log.Level = "nonsense"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}
