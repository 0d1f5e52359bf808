package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestOperationFromSQL(t *testing.T) {
	cases := map[string]string{
		"SELECT * FROM payments":                       "SELECT",
		"  with t as (select 1) select * from t":       "SELECT",
		"SET LOCAL statement_timeout = 15000":          "SET",
		"(SELECT count(*) FROM invoices)":              "SELECT",
		"":                                             "UNKNOWN",
		"VACUUM":                                       "UNKNOWN",
	}
	for sql, want := range cases {
		assert.Equal(t, want, operationFromSQL(sql), sql)
	}
}

func TestGormLoggerTraceLevels(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewGormLogger(zap.New(core), GormLoggerConfig{Level: gormlogger.Warn, SlowThreshold: 10 * time.Millisecond})

	query := func() (string, int64) { return "SELECT * FROM invoices", 3 }

	l.Trace(context.Background(), time.Now(), query, nil)
	assert.Equal(t, 0, logs.Len(), "fast successful reads are not logged at warn level")

	l.Trace(context.Background(), time.Now().Add(-time.Second), query, nil)
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, zap.WarnLevel, logs.All()[0].Level)

	l.Trace(context.Background(), time.Now(), query, errors.New("boom"))
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, zap.ErrorLevel, logs.All()[1].Level)
}

func TestGormLoggerParamsFilterDropsValues(t *testing.T) {
	l := NewGormLogger(zap.NewNop(), DefaultGormLoggerConfig())
	sql, params := l.ParamsFilter(context.Background(), "SELECT 1 WHERE id = ?", "secret")
	assert.Equal(t, "SELECT 1 WHERE id = ?", sql)
	assert.Nil(t, params)
}
