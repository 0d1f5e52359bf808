package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	obscontext "github.com/smallbiznis/praxis/internal/observability/context"
)

const queryClinicianID = "clinicianId"

// ClinicianScope puts the requested clinician filter on the request context so request
// and report logs carry it.
func ClinicianScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if clinicianID := strings.TrimSpace(c.Query(queryClinicianID)); clinicianID != "" {
			ctx := obscontext.WithClinicianID(c.Request.Context(), clinicianID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
