// Package ledgertest seeds an in-memory ledger for tests.
package ledgertest

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/pkg/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Open returns a migrated sqlite ledger.
func Open(t testing.TB) *gorm.DB {
	t.Helper()
	conn, err := db.NewTest(domain.Models()...)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return conn
}

// Money parses a fixed amount such as "150.00".
func Money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

// NullMoney parses an amount; an empty string yields a null value.
func NullMoney(v string) decimal.NullDecimal {
	if v == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

// Day returns midnight UTC of the given date plus an optional hour.
func Day(year int, month time.Month, day int, hour ...int) time.Time {
	h := 0
	if len(hour) > 0 {
		h = hour[0]
	}
	return time.Date(year, month, day, h, 0, 0, 0, time.UTC)
}

func Ptr[T any](v T) *T {
	return &v
}

// Seed inserts rows in order and fails the test on the first error.
func Seed(t testing.TB, conn *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		require.NoError(t, conn.Create(row).Error)
	}
}
