package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE raised by postgres when statement_timeout cancels a query.
const pgQueryCanceled = "57014"

// IsStatementTimeout reports whether err came from a query cut off by a timeout.
func IsStatementTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgQueryCanceled
	}

	// MySQL (error 3024, max_execution_time exceeded)
	if strings.Contains(err.Error(), "Error 3024") {
		return true
	}

	return strings.Contains(err.Error(), "canceling statement due to statement timeout")
}
