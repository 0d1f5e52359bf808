package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// ReadSnapshot runs fn inside one read-only transaction so that every query of a report
// sees the same ledger state. On postgres each statement is bounded by timeout.
func ReadSnapshot(ctx context.Context, conn *gorm.DB, timeout time.Duration, fn func(tx *gorm.DB) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	opts := &sql.TxOptions{}
	dialect := conn.Dialector.Name()
	if dialect == DialectPostgres || dialect == DialectMySQL {
		opts.ReadOnly = true
	}

	return conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if dialect == DialectPostgres && timeout > 0 {
			stmt := fmt.Sprintf("SET LOCAL statement_timeout = %d", timeout.Milliseconds())
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return fn(tx)
	}, opts)
}
