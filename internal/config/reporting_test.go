package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReportingConfigHolderDefaults(t *testing.T) {
	holder, err := NewReportingConfigHolder(Config{ReportingConfigPath: t.TempDir()})
	require.NoError(t, err)

	cfg := holder.Get()
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.Equal(t, 10, cfg.DefaultPageSize)
	assert.Equal(t, 15*time.Second, cfg.StatementTimeout)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestNewReportingConfigHolderReadsFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`reporting:
  timezone: UTC
  practiceName: Northside Counseling
  currencySymbol: "$"
  defaultPageSize: 25
  maxPageSize: 100
  statementTimeout: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reporting.yml"), content, 0o600))

	holder, err := NewReportingConfigHolder(Config{ReportingConfigPath: dir})
	require.NoError(t, err)

	cfg := holder.Get()
	assert.Equal(t, "Northside Counseling", cfg.PracticeName)
	assert.Equal(t, 25, cfg.DefaultPageSize)
	assert.Equal(t, 5*time.Second, cfg.StatementTimeout)
}

func TestNewReportingConfigHolderRejectsQuotedSymbol(t *testing.T) {
	dir := t.TempDir()
	content := []byte("reporting:\n  currencySymbol: 'US\"$'\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "reporting.yml"), content, 0o600))

	_, err := NewReportingConfigHolder(Config{ReportingConfigPath: dir})
	assert.EqualError(t, err, "reporting.currencySymbol cannot contain quotes or backslashes")
}

func TestValidateReportingConfig(t *testing.T) {
	cfg := DefaultReportingConfig()
	assert.NoError(t, validateReportingConfig(cfg))

	bad := cfg
	bad.DefaultPageSize = 0
	assert.Error(t, validateReportingConfig(bad))

	bad = cfg
	bad.MaxPageSize = 5
	assert.Error(t, validateReportingConfig(bad))

	bad = cfg
	bad.Timezone = "Mars/Olympus"
	assert.Error(t, validateReportingConfig(bad))

	for _, symbol := range []string{`US"$`, `\$`} {
		bad = cfg
		bad.CurrencySymbol = symbol
		assert.EqualError(t, validateReportingConfig(bad), "reporting.currencySymbol cannot contain quotes or backslashes")
	}

	ok := cfg
	ok.CurrencySymbol = "R$"
	assert.NoError(t, validateReportingConfig(ok))
}

func TestNilHolderFallsBackToDefaults(t *testing.T) {
	var holder *ReportingConfigHolder
	assert.Equal(t, DefaultReportingConfig(), holder.Get())
}
