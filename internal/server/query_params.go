package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
)

const (
	queryStartDate = "startDate"
	queryEndDate   = "endDate"
	queryRange     = "range"
	queryPage      = "page"
	queryPageSize  = "pageSize"
	queryLimit     = "limit"
)

type reportWindow struct {
	StartDate   string
	EndDate     string
	ClinicianID string
}

func parseReportWindow(c *gin.Context) reportWindow {
	return reportWindow{
		StartDate:   strings.TrimSpace(c.Query(queryStartDate)),
		EndDate:     strings.TrimSpace(c.Query(queryEndDate)),
		ClinicianID: strings.TrimSpace(c.Query(queryClinicianID)),
	}
}

// parsePaging reads page and pageSize. limit is accepted in place of pageSize. A missing
// value is returned as 0 so the service applies its own default.
func parsePaging(c *gin.Context) (int, int, error) {
	page, err := pagination.ParsePositive(c.Query(queryPage), queryPage, 0)
	if err != nil {
		return 0, 0, err
	}

	field, raw := queryPageSize, c.Query(queryPageSize)
	if strings.TrimSpace(raw) == "" {
		if limit, ok := c.GetQuery(queryLimit); ok {
			field, raw = queryLimit, limit
		}
	}
	pageSize, err := pagination.ParsePositive(raw, field, 0)
	if err != nil {
		return 0, 0, err
	}
	return page, pageSize, nil
}
