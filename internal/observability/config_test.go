package observability

import (
	"testing"

	"github.com/smallbiznis/praxis/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig(config.Config{OTelSamplingRatio: 4})

	assert.Equal(t, "praxis", cfg.ServiceName)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "grpc", cfg.OtelExporterProtocol)
	assert.Equal(t, 0.1, cfg.OtelSamplingRatio)
}

func TestDebug(t *testing.T) {
	for _, tc := range []struct {
		name  string
		cfg   config.Config
		debug bool
	}{
		{name: "production info", cfg: config.Config{Environment: "production", LogLevel: "info"}},
		{name: "production debug level", cfg: config.Config{Environment: "production", LogLevel: "DEBUG"}, debug: true},
		{name: "development", cfg: config.Config{Environment: "development"}, debug: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.debug, LoadConfig(tc.cfg).Debug())
		})
	}
}
