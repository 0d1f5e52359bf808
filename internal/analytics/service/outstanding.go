package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
	"gorm.io/gorm"
)

func (s *Service) GetOutstandingBalances(ctx context.Context, req analytics.OutstandingRequest) (analytics.OutstandingPage, error) {
	cfg := s.reporting.Get()
	r, err := daterange.ParseStrict(req.StartDate, req.EndDate, cfg.Location())
	if err != nil {
		return analytics.OutstandingPage{}, s.invalid(ctx, opOutstandingBalances, err)
	}
	page, err := s.outstandingPage(req.Page, req.PageSize)
	if err != nil {
		return analytics.OutstandingPage{}, s.invalid(ctx, opOutstandingBalances, err)
	}

	start, end := r.UTC()
	f := outstandingFilter(start, end, req.ClinicianID)

	var (
		total int64
		rows  []analytics.OutstandingRow
	)
	sc := scope{op: opOutstandingBalances, granularity: string(r.Granularity), start: start, end: end, clinicianID: req.ClinicianID, filter: f}
	err = s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		total, err = s.repo.CountOutstandingGroups(ctx, tx, f)
		if err != nil {
			return err
		}
		if total == 0 {
			return nil
		}
		rows, err = s.loadOutstanding(ctx, tx, f, page.Size, page.Offset())
		return err
	})
	if err != nil {
		return analytics.OutstandingPage{}, err
	}

	if rows == nil {
		rows = []analytics.OutstandingRow{}
	}
	return analytics.OutstandingPage{
		Data:       rows,
		Pagination: pagination.New(total, page),
	}, nil
}

func (s *Service) outstandingPage(number, size int) (pagination.Page, error) {
	cfg := s.reporting.Get()
	if number == 0 {
		number = 1
	}
	if size == 0 {
		size = cfg.DefaultPageSize
	}
	if number < 0 {
		return pagination.Page{}, &pagination.ErrNotPositive{Field: "page"}
	}
	if size < 0 {
		return pagination.Page{}, &pagination.ErrNotPositive{Field: "pageSize"}
	}
	if cfg.MaxPageSize > 0 && size > cfg.MaxPageSize {
		size = cfg.MaxPageSize
	}
	return pagination.Page{Number: number, Size: size}, nil
}

// outstandingFilter selects SENT and OVERDUE invoices issued within [start, end]. The page
// and count queries both compile this one filter.
func outstandingFilter(start, end time.Time, clinicianID string) query.Filter {
	return query.New(
		query.Between(ledger.ColInvoiceIssuedDate, start, end),
		query.StatusIn(ledger.ColInvoiceStatus, ledger.InvoiceStatusSent, ledger.InvoiceStatusOverdue),
		clinicianIs(ledger.ColInvoiceClinicianID, clinicianID),
	)
}

// loadOutstanding reads one page of client groups and computes their balances from the
// invoices matching f and the completed payments on those invoices. A zero limit reads every
// group; invoices are then selected by f alone, and payments always through a subquery on the
// invoice filter.
func (s *Service) loadOutstanding(ctx context.Context, tx *gorm.DB, f query.Filter, limit, offset int) ([]analytics.OutstandingRow, error) {
	groups, err := s.repo.ListOutstandingGroups(ctx, tx, f, limit, offset)
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return []analytics.OutstandingRow{}, nil
	}

	invoiceFilter := f
	if limit > 0 {
		groupIDs := make([]string, 0, len(groups))
		for _, g := range groups {
			groupIDs = append(groupIDs, g.ClientGroupID)
		}
		invoiceFilter = f.With(query.In(ledger.ColInvoiceClientGroupID, groupIDs...))
	}
	invoiceRecords, err := s.repo.ListInvoices(ctx, tx, invoiceFilter)
	if err != nil {
		return nil, err
	}
	invoices := ledger.NormalizeInvoices(invoiceRecords)
	s.metrics.RecordLedgerRows(ctx, "invoices", len(invoices))

	paymentRecords, err := s.repo.ListPayments(ctx, tx, query.New(
		query.InSelect(ledger.ColPaymentInvoiceID, ledger.TableInvoices, ledger.ColInvoiceID, invoiceFilter),
		query.StatusIs(ledger.ColPaymentStatus, ledger.PaymentStatusCompleted),
	))
	if err != nil {
		return nil, err
	}
	payments := ledger.NormalizePayments(paymentRecords)
	s.metrics.RecordLedgerRows(ctx, "payments", len(payments))

	return buildOutstandingRows(groups, invoices, payments), nil
}

func buildOutstandingRows(groups []ledger.ClientGroupRecord, invoices []ledger.InvoiceLine, payments []ledger.PaymentLine) []analytics.OutstandingRow {
	invoiced := make(map[string]decimal.Decimal, len(groups))
	groupOf := make(map[string]string, len(invoices))
	for _, inv := range invoices {
		invoiced[inv.ClientGroupID] = invoiced[inv.ClientGroupID].Add(inv.Amount)
		groupOf[inv.InvoiceID] = inv.ClientGroupID
	}
	paid := make(map[string]decimal.Decimal, len(groups))
	for _, p := range payments {
		groupID, ok := groupOf[p.InvoiceID]
		if !ok {
			continue
		}
		paid[groupID] = paid[groupID].Add(p.Applied())
	}

	rows := make([]analytics.OutstandingRow, 0, len(groups))
	for _, g := range groups {
		totalInvoiced := invoiced[g.ClientGroupID].Round(2)
		totalPaid := paid[g.ClientGroupID].Round(2)
		rows = append(rows, analytics.OutstandingRow{
			ClientGroupID:         g.ClientGroupID,
			ClientGroupName:       g.ClientGroupName,
			ResponsibleClientName: g.ResponsibleClientName(),
			TotalAmountInvoiced:   totalInvoiced,
			TotalAmountPaid:       totalPaid,
			TotalAmountUnpaid:     totalInvoiced.Sub(totalPaid),
		})
	}
	return rows
}
