package observability

import (
	"strings"

	"github.com/smallbiznis/praxis/internal/config"
)

// Config holds the logging and telemetry settings of the process.
type Config struct {
	ServiceName string
	Environment string
	Version     string

	LogLevel  string
	LogFormat string
	LogFile   config.LogFileConfig

	OtelEnabled          bool
	OtelExporterEndpoint string
	OtelExporterProtocol string
	OtelSamplingRatio    float64
}

func LoadConfig(cfg config.Config) Config {
	serviceName := strings.TrimSpace(cfg.AppName)
	if serviceName == "" {
		serviceName = "praxis"
	}

	ratio := cfg.OTelSamplingRatio
	if ratio < 0 || ratio > 1 {
		ratio = 0.1
	}

	return Config{
		ServiceName:          serviceName,
		Environment:          strings.TrimSpace(cfg.Environment),
		Version:              strings.TrimSpace(cfg.AppVersion),
		LogLevel:             orDefault(strings.ToLower(strings.TrimSpace(cfg.LogLevel)), "info"),
		LogFormat:            orDefault(strings.ToLower(strings.TrimSpace(cfg.LogFormat)), "json"),
		LogFile:              cfg.LogFile,
		OtelEnabled:          cfg.OTelEnabled,
		OtelExporterEndpoint: strings.TrimSpace(cfg.OTLPEndpoint),
		OtelExporterProtocol: orDefault(strings.ToLower(strings.TrimSpace(cfg.OTLPProtocol)), "grpc"),
		OtelSamplingRatio:    ratio,
	}
}

// Debug enables stack traces on request errors and error logs.
func (c Config) Debug() bool {
	if c.LogLevel == "debug" {
		return true
	}
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
