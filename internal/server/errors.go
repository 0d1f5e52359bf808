package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	analyticsdomain "github.com/smallbiznis/praxis/internal/analytics/domain"
	ledgerdomain "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/pkg/db"
	"github.com/smallbiznis/praxis/pkg/telemetry/correlation"
	"gorm.io/gorm"
)

const headerCorrelationID = "X-Correlation-Id"

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type          string            `json:"type"`
	Message       string            `json:"message"`
	Errors        []ValidationError `json:"errors,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrNotFound           = errors.New("not_found")
	ErrServiceUnavailable = errors.New("service_unavailable")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		if status >= http.StatusInternalServerError {
			ctx, correlationID := correlation.EnsureCorrelationID(c.Request.Context())
			c.Request = c.Request.WithContext(ctx)
			payload.CorrelationID = correlationID
			c.Header(headerCorrelationID, correlationID)
		}
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	if vErr := asValidationError(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: vErr.Message,
			Errors: []ValidationError{
				{
					Field:   vErr.Field,
					Code:    vErr.Code,
					Message: vErr.Message,
				},
			},
		}
	}

	switch {
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrServiceUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "Internal server error",
		}
	}
}

func asValidationError(err error) *analyticsdomain.ValidationError {
	if err == nil {
		return nil
	}
	var vErr *analyticsdomain.ValidationError
	if errors.As(analyticsdomain.AsValidation(err), &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, analyticsdomain.ErrNotFound),
		errors.Is(err, ledgerdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

// bindingError turns a query binding failure into the ValidationError of the field that
// failed. Only the export format is bound this way.
func bindingError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fieldErr := range fieldErrs {
			if fieldErr.Field() == "Format" {
				return analyticsdomain.ErrInvalidFormat
			}
		}
	}
	return &analyticsdomain.ValidationError{
		Field:   "request",
		Code:    "invalid_request",
		Message: "invalid request",
	}
}

func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if vErr := asValidationError(err); vErr != nil {
		return "validation_error", vErr.Code
	}
	var depErr *analyticsdomain.DependencyError
	if errors.As(err, &depErr) {
		if db.IsStatementTimeout(err) {
			return "dependency_error", "statement_timeout"
		}
		return "dependency_error", depErr.Op
	}
	switch {
	case isNotFoundError(err):
		return "not_found", "not_found"
	case errors.Is(err, ErrServiceUnavailable):
		return "service_unavailable", "service_unavailable"
	default:
		return "internal_error", "internal_error"
	}
}
