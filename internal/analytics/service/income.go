package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	"github.com/smallbiznis/praxis/internal/analytics/revenuesplit"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"github.com/smallbiznis/praxis/pkg/db/pagination"
	"gorm.io/gorm"
)

func (s *Service) GetIncomeReport(ctx context.Context, req analytics.IncomeRequest) (analytics.IncomeReport, error) {
	cfg := s.reporting.Get()
	r, err := daterange.ParseStrict(req.StartDate, req.EndDate, cfg.Location())
	if err != nil {
		return analytics.IncomeReport{}, s.invalid(ctx, opIncomeReport, err)
	}
	if req.Page < 0 {
		return analytics.IncomeReport{}, s.invalid(ctx, opIncomeReport, &pagination.ErrNotPositive{Field: "page"})
	}
	if req.PageSize < 0 {
		return analytics.IncomeReport{}, s.invalid(ctx, opIncomeReport, &pagination.ErrNotPositive{Field: "pageSize"})
	}

	start, end := r.UTC()
	f := incomeFilter(start, end, req.ClinicianID)

	var (
		lines         []ledger.IncomeLine
		clinicianName string
	)
	sc := scope{op: opIncomeReport, granularity: string(r.Granularity), start: start, end: end, clinicianID: req.ClinicianID, filter: f}
	err = s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		lines, err = s.loadIncomeLines(ctx, tx, f)
		if err != nil {
			return err
		}
		if req.ClinicianID == "" {
			return nil
		}
		clinician, err := s.repo.GetClinician(ctx, tx, req.ClinicianID)
		switch {
		case errors.Is(err, ledger.ErrNotFound):
			return nil
		case err != nil:
			return err
		}
		clinicianName = clinician.FullName()
		return nil
	})
	if err != nil {
		return analytics.IncomeReport{}, err
	}

	rows, totals := buildIncomeRows(r, lines)
	page := pagination.Page{Number: max(req.Page, 1), Size: req.PageSize}
	if cfg.MaxPageSize > 0 && page.Size > cfg.MaxPageSize {
		page.Size = cfg.MaxPageSize
	}
	if req.PageSize == 0 {
		page = pagination.Page{Number: 1, Size: len(rows)}
	}

	return analytics.IncomeReport{
		Range:         r,
		ClinicianID:   req.ClinicianID,
		ClinicianName: clinicianName,
		Rows:          pagination.Slice(rows, page),
		Totals:        totals,
		Pagination:    pagination.New(int64(len(rows)), page),
	}, nil
}

// incomeFilter selects completed payments on non-void invoices paid within [start, end].
func incomeFilter(start, end time.Time, clinicianID string) query.Filter {
	return query.New(
		query.Between(ledger.ColPaymentDate, start, end),
		query.StatusIs(ledger.ColPaymentStatus, ledger.PaymentStatusCompleted),
		query.StatusIsNot(ledger.ColInvoiceStatus, ledger.InvoiceStatusVoid),
		clinicianIs(ledger.ColInvoiceClinicianID, clinicianID),
	)
}

func (s *Service) loadIncomeLines(ctx context.Context, tx *gorm.DB, f query.Filter) ([]ledger.IncomeLine, error) {
	records, err := s.repo.ListIncomeLines(ctx, tx, f)
	if err != nil {
		return nil, err
	}
	s.metrics.RecordLedgerRows(ctx, "payments", len(records))
	return ledger.NormalizeIncomeLines(records), nil
}

// buildIncomeRows emits one row per candidate bucket plus the grand totals. The
// appointment basis of an invoice is counted by the first qualifying payment only, so
// partial payments of one appointment do not multiply its fee.
func buildIncomeRows(r daterange.Range, lines []ledger.IncomeLine) ([]analytics.IncomeRow, analytics.IncomeRow) {
	buckets := daterange.Buckets(r)
	rows := make([]analytics.IncomeRow, len(buckets))
	index := make(map[string]int, len(buckets))
	for i, b := range buckets {
		rows[i] = zeroIncomeRow(b.Label)
		index[b.Label] = i
	}

	counted := make(map[string]struct{})
	for _, line := range lines {
		if !r.Contains(line.PaymentDate) {
			continue
		}
		i, ok := index[r.LabelFor(line.PaymentDate)]
		if !ok {
			continue
		}
		row := &rows[i]
		row.ClientPayments = row.ClientPayments.Add(line.Amount.Add(line.CreditApplied))

		if line.HasAppointment() {
			if _, seen := counted[line.AppointmentID]; seen {
				continue
			}
			counted[line.AppointmentID] = struct{}{}
		}
		basis := revenuesplit.Basis(line)
		split := revenuesplit.Split(basis, line.PercentageSplit)
		row.GrossIncome = row.GrossIncome.Add(basis)
		row.ClinicianCut = row.ClinicianCut.Add(split.ClinicianCut)
	}

	totals := zeroIncomeRow("Totals")
	for i := range rows {
		row := &rows[i]
		row.ClientPayments = row.ClientPayments.Round(2)
		row.GrossIncome = row.GrossIncome.Round(2)
		row.ClinicianCut = row.ClinicianCut.Round(2)
		row.NetIncome = row.GrossIncome.Sub(row.ClinicianCut)

		totals.ClientPayments = totals.ClientPayments.Add(row.ClientPayments)
		totals.GrossIncome = totals.GrossIncome.Add(row.GrossIncome)
		totals.ClinicianCut = totals.ClinicianCut.Add(row.ClinicianCut)
		totals.NetIncome = totals.NetIncome.Add(row.NetIncome)
	}
	return rows, totals
}

func zeroIncomeRow(label string) analytics.IncomeRow {
	return analytics.IncomeRow{
		Label:          label,
		ClientPayments: decimal.Zero,
		GrossIncome:    decimal.Zero,
		ClinicianCut:   decimal.Zero,
		NetIncome:      decimal.Zero,
	}
}
