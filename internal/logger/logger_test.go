package logger

import (
	"testing"

	"catalog-api/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		appEnv  string
		cfg     config.LoggerConfig
		debugOn bool
		infoOn  bool
	}{
		{name: "development is debug", appEnv: "development", cfg: config.LoggerConfig{Level: "error", Encoding: "json"}, debugOn: true, infoOn: true},
		{name: "production honours level", appEnv: "production", cfg: config.LoggerConfig{Level: "warn", Encoding: "json"}, debugOn: false, infoOn: false},
		{name: "bad level falls back to info", appEnv: "production", cfg: config.LoggerConfig{Level: "loud", Encoding: "console"}, debugOn: false, infoOn: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			log, err := New(tc.appEnv, tc.cfg)
			require.NoError(t, err)

			assert.Equal(t, tc.debugOn, log.Core().Enabled(zapcore.DebugLevel))
			assert.Equal(t, tc.infoOn, log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
