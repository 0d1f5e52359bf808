package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analyticsdomain "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/analytics/export"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
)

// money renders a decimal as a JSON number with two fixed places.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

type rangeResponse struct {
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Granularity string `json:"granularity"`
}

type homeSummaryResponse struct {
	GrossIncome         json.Number `json:"grossIncome"`
	TotalClientPayments json.Number `json:"totalClientPayments"`
	NetIncome           json.Number `json:"netIncome"`
	StartDate           string      `json:"startDate"`
	EndDate             string      `json:"endDate"`
}

type incomeRowResponse struct {
	Label          string      `json:"label"`
	ClientPayments json.Number `json:"clientPayments"`
	GrossIncome    json.Number `json:"grossIncome"`
	ClinicianCut   json.Number `json:"clinicianCut"`
	NetIncome      json.Number `json:"netIncome"`
}

type incomeReportResponse struct {
	Range         rangeResponse       `json:"range"`
	ClinicianID   string              `json:"clinicianId,omitempty"`
	ClinicianName string              `json:"clinicianName,omitempty"`
	Data          []incomeRowResponse `json:"data"`
	Totals        incomeRowResponse   `json:"totals"`
	Pagination    pagination.Info     `json:"pagination"`
}

type outstandingRowResponse struct {
	ClientGroupID         string      `json:"clientGroupId"`
	ClientGroupName       string      `json:"clientGroupName"`
	ResponsibleClientName string      `json:"responsibleClientName"`
	TotalAmountInvoiced   json.Number `json:"totalAmountInvoiced"`
	TotalAmountPaid       json.Number `json:"totalAmountPaid"`
	TotalAmountUnpaid     json.Number `json:"totalAmountUnpaid"`
}

type outstandingPageResponse struct {
	Data       []outstandingRowResponse `json:"data"`
	Pagination pagination.Info          `json:"pagination"`
}

type chartPointResponse struct {
	Label string      `json:"label"`
	Value json.Number `json:"value"`
}

type categoryCountResponse struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type histogramResponse struct {
	Total      int64                   `json:"total"`
	Categories []categoryCountResponse `json:"categories"`
}

type dashboardResponse struct {
	Range             rangeResponse           `json:"range"`
	Income            json.Number             `json:"income"`
	IncomeChart       []chartPointResponse    `json:"incomeChart"`
	Outstanding       json.Number             `json:"outstanding"`
	Uninvoiced        json.Number             `json:"uninvoiced"`
	Appointments      int64                   `json:"appointments"`
	AppointmentsChart []categoryCountResponse `json:"appointmentsChart"`
	Notes             int64                   `json:"notes"`
	NotesChart        []categoryCountResponse `json:"notesChart"`
}

type uninvoicedResponse struct {
	Uninvoiced json.Number `json:"uninvoiced"`
}

type exportQuery struct {
	Format string `form:"format" binding:"required,oneof=csv excel"`
}

func (s *Server) GetDashboard(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	resp, err := s.analyticsSvc.GetDashboard(c.Request.Context(), parseDashboardRequest(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDashboardResponse(resp))
}

func (s *Server) GetHomeSummary(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	window := parseReportWindow(c)
	resp, err := s.analyticsSvc.GetHomeSummary(c.Request.Context(), analyticsdomain.HomeRequest{
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		ClinicianID: window.ClinicianID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, homeSummaryResponse{
		GrossIncome:         money(resp.GrossIncome),
		TotalClientPayments: money(resp.TotalClientPayments),
		NetIncome:           money(resp.NetIncome),
		StartDate:           resp.StartDate,
		EndDate:             resp.EndDate,
	})
}

func (s *Server) GetOutstandingBalances(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	page, pageSize, err := parsePaging(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	window := parseReportWindow(c)
	resp, err := s.analyticsSvc.GetOutstandingBalances(c.Request.Context(), analyticsdomain.OutstandingRequest{
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		ClinicianID: window.ClinicianID,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := make([]outstandingRowResponse, 0, len(resp.Data))
	for _, row := range resp.Data {
		data = append(data, outstandingRowResponse{
			ClientGroupID:         row.ClientGroupID,
			ClientGroupName:       row.ClientGroupName,
			ResponsibleClientName: row.ResponsibleClientName,
			TotalAmountInvoiced:   money(row.TotalAmountInvoiced),
			TotalAmountPaid:       money(row.TotalAmountPaid),
			TotalAmountUnpaid:     money(row.TotalAmountUnpaid),
		})
	}

	c.JSON(http.StatusOK, outstandingPageResponse{
		Data:       data,
		Pagination: resp.Pagination,
	})
}

func (s *Server) GetIncomeReport(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	page, pageSize, err := parsePaging(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	window := parseReportWindow(c)
	resp, err := s.analyticsSvc.GetIncomeReport(c.Request.Context(), analyticsdomain.IncomeRequest{
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		ClinicianID: window.ClinicianID,
		Page:        page,
		PageSize:    pageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIncomeReportResponse(resp))
}

func (s *Server) ExportIncomeReport(c *gin.Context) {
	var query exportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, bindingError(err))
		return
	}
	format, err := export.ParseFormat(query.Format)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.writeIncomeFile(c, format)
}

func (s *Server) GetIncomeStatement(c *gin.Context) {
	s.writeIncomeFile(c, export.FormatPDF)
}

func (s *Server) GetAppointmentHistogram(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	resp, err := s.analyticsSvc.GetAppointmentHistogram(c.Request.Context(), parseDashboardRequest(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newHistogramResponse(resp))
}

func (s *Server) GetNotesHistogram(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	resp, err := s.analyticsSvc.GetNotesHistogram(c.Request.Context(), parseDashboardRequest(c))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newHistogramResponse(resp))
}

func (s *Server) GetUninvoicedTotal(c *gin.Context) {
	if s.analyticsSvc == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	total, err := s.analyticsSvc.GetUninvoicedTotal(c.Request.Context(), parseReportWindow(c).ClinicianID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, uninvoicedResponse{Uninvoiced: money(total)})
}

// writeIncomeFile renders the whole range as a single attachment.
func (s *Server) writeIncomeFile(c *gin.Context, format export.Format) {
	if s.analyticsSvc == nil || s.renderer == nil {
		AbortWithError(c, ErrServiceUnavailable)
		return
	}

	window := parseReportWindow(c)
	report, err := s.analyticsSvc.GetIncomeReport(c.Request.Context(), analyticsdomain.IncomeRequest{
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		ClinicianID: window.ClinicianID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	reporting := s.reporting.Get()
	file, err := s.renderer.Income(c.Request.Context(), format, report, export.Meta{
		PracticeName:   reporting.PracticeName,
		CurrencySymbol: reporting.CurrencySymbol,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.httpMetrics.AddExportBytes(string(format), len(file.Body))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}

func parseDashboardRequest(c *gin.Context) analyticsdomain.DashboardRequest {
	window := parseReportWindow(c)
	return analyticsdomain.DashboardRequest{
		Range:       strings.TrimSpace(c.Query(queryRange)),
		StartDate:   window.StartDate,
		EndDate:     window.EndDate,
		ClinicianID: window.ClinicianID,
	}
}

func newRangeResponse(r daterange.Range) rangeResponse {
	return rangeResponse{
		StartDate:   r.StartDate(),
		EndDate:     r.EndDate(),
		Granularity: string(r.Granularity),
	}
}

func newIncomeRowResponse(row analyticsdomain.IncomeRow) incomeRowResponse {
	return incomeRowResponse{
		Label:          row.Label,
		ClientPayments: money(row.ClientPayments),
		GrossIncome:    money(row.GrossIncome),
		ClinicianCut:   money(row.ClinicianCut),
		NetIncome:      money(row.NetIncome),
	}
}

func newIncomeReportResponse(report analyticsdomain.IncomeReport) incomeReportResponse {
	data := make([]incomeRowResponse, 0, len(report.Rows))
	for _, row := range report.Rows {
		data = append(data, newIncomeRowResponse(row))
	}
	return incomeReportResponse{
		Range:         newRangeResponse(report.Range),
		ClinicianID:   report.ClinicianID,
		ClinicianName: report.ClinicianName,
		Data:          data,
		Totals:        newIncomeRowResponse(report.Totals),
		Pagination:    report.Pagination,
	}
}

func newCategoryCounts(categories []analyticsdomain.CategoryCount) []categoryCountResponse {
	out := make([]categoryCountResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, categoryCountResponse{Name: category.Name, Count: category.Count})
	}
	return out
}

func newHistogramResponse(h analyticsdomain.Histogram) histogramResponse {
	return histogramResponse{
		Total:      h.Total,
		Categories: newCategoryCounts(h.Categories),
	}
}

func newDashboardResponse(d analyticsdomain.Dashboard) dashboardResponse {
	chart := make([]chartPointResponse, 0, len(d.IncomeChart))
	for _, point := range d.IncomeChart {
		chart = append(chart, chartPointResponse{Label: point.Label, Value: money(point.Value)})
	}
	return dashboardResponse{
		Range:             newRangeResponse(d.Range),
		Income:            money(d.Income),
		IncomeChart:       chart,
		Outstanding:       money(d.Outstanding),
		Uninvoiced:        money(d.Uninvoiced),
		Appointments:      d.Appointments,
		AppointmentsChart: newCategoryCounts(d.AppointmentsChart),
		Notes:             d.Notes,
		NotesChart:        newCategoryCounts(d.NotesChart),
	}
}
