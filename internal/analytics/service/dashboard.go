package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"gorm.io/gorm"
)

func (s *Service) GetDashboard(ctx context.Context, req analytics.DashboardRequest) (analytics.Dashboard, error) {
	now := s.clock.Now()
	r, err := daterange.Resolve(req.Range, req.StartDate, req.EndDate, now, s.reporting.Get().Location())
	if err != nil {
		return analytics.Dashboard{}, s.invalid(ctx, opDashboard, err)
	}
	start, end := r.UTC()

	var (
		incomeLines  []ledger.IncomeLine
		outstanding  []analytics.OutstandingRow
		uninvoiced   decimal.Decimal
		appointments analytics.Histogram
		notes        analytics.Histogram
	)
	sc := scope{op: opDashboard, granularity: string(r.Granularity), start: start, end: end, clinicianID: req.ClinicianID}
	err = s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		if incomeLines, err = s.loadIncomeLines(ctx, tx, incomeFilter(start, end, req.ClinicianID)); err != nil {
			return err
		}
		if outstanding, err = s.loadOutstanding(ctx, tx, outstandingFilter(start, end, req.ClinicianID), 0, 0); err != nil {
			return err
		}
		if uninvoiced, err = s.loadUninvoiced(ctx, tx, now, req.ClinicianID); err != nil {
			return err
		}
		if appointments, err = s.loadAppointmentHistogram(ctx, tx, start, end, req.ClinicianID); err != nil {
			return err
		}
		notes, err = s.loadNotesHistogram(ctx, tx, start, end, req.ClinicianID)
		return err
	})
	if err != nil {
		return analytics.Dashboard{}, err
	}

	rows, totals := buildIncomeRows(r, incomeLines)
	chart := make([]analytics.ChartPoint, 0, len(rows))
	for _, row := range rows {
		chart = append(chart, analytics.ChartPoint{Label: row.Label, Value: row.ClientPayments})
	}
	outstandingTotal := decimal.Zero
	for _, row := range outstanding {
		outstandingTotal = outstandingTotal.Add(row.TotalAmountUnpaid)
	}

	return analytics.Dashboard{
		Range:             r,
		Income:            totals.ClientPayments,
		IncomeChart:       chart,
		Outstanding:       outstandingTotal,
		Uninvoiced:        uninvoiced,
		Appointments:      appointments.Total,
		AppointmentsChart: appointments.Categories,
		Notes:             notes.Total,
		NotesChart:        notes.Categories,
	}, nil
}

func (s *Service) GetAppointmentHistogram(ctx context.Context, req analytics.DashboardRequest) (analytics.Histogram, error) {
	return s.rangeHistogram(ctx, opAppointmentHistogram, req, s.loadAppointmentHistogram)
}

func (s *Service) GetNotesHistogram(ctx context.Context, req analytics.DashboardRequest) (analytics.Histogram, error) {
	return s.rangeHistogram(ctx, opNotesHistogram, req, s.loadNotesHistogram)
}

type histogramLoader func(ctx context.Context, tx *gorm.DB, start, end time.Time, clinicianID string) (analytics.Histogram, error)

func (s *Service) rangeHistogram(ctx context.Context, op string, req analytics.DashboardRequest, load histogramLoader) (analytics.Histogram, error) {
	r, err := daterange.Resolve(req.Range, req.StartDate, req.EndDate, s.clock.Now(), s.reporting.Get().Location())
	if err != nil {
		return analytics.Histogram{}, s.invalid(ctx, op, err)
	}
	start, end := r.UTC()

	var h analytics.Histogram
	sc := scope{op: op, granularity: string(r.Granularity), start: start, end: end, clinicianID: req.ClinicianID}
	err = s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		h, err = load(ctx, tx, start, end, req.ClinicianID)
		return err
	})
	if err != nil {
		return analytics.Histogram{}, err
	}
	return h, nil
}

func (s *Service) loadAppointmentHistogram(ctx context.Context, tx *gorm.DB, start, end time.Time, clinicianID string) (analytics.Histogram, error) {
	records, err := s.repo.ListAppointments(ctx, tx, query.New(
		query.Between(ledger.ColAppointmentStart, start, end),
		query.StatusIs(ledger.ColAppointmentType, ledger.AppointmentTypeAppointment),
		clinicianIs(ledger.ColAppointmentClinicianID, clinicianID),
	))
	if err != nil {
		return analytics.Histogram{}, err
	}
	s.metrics.RecordLedgerRows(ctx, "appointments", len(records))

	statuses := make([]string, 0, len(records))
	for _, rec := range records {
		statuses = append(statuses, rec.Status)
	}
	return histogram(appointmentCategories, statuses), nil
}

// loadNotesHistogram places a note in range by its appointment's start date.
func (s *Service) loadNotesHistogram(ctx context.Context, tx *gorm.DB, start, end time.Time, clinicianID string) (analytics.Histogram, error) {
	records, err := s.repo.ListNotes(ctx, tx, query.New(
		query.Between(ledger.ColAppointmentStart, start, end),
		clinicianIs(ledger.ColAppointmentClinicianID, clinicianID),
	))
	if err != nil {
		return analytics.Histogram{}, err
	}
	s.metrics.RecordLedgerRows(ctx, "notes", len(records))

	statuses := make([]string, 0, len(records))
	for _, rec := range records {
		statuses = append(statuses, rec.Status)
	}
	return histogram(noteCategories, statuses), nil
}

func (s *Service) GetUninvoicedTotal(ctx context.Context, clinicianID string) (decimal.Decimal, error) {
	now := s.clock.Now()
	var total decimal.Decimal
	sc := scope{op: opUninvoicedTotal, clinicianID: clinicianID}
	err := s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		var err error
		total, err = s.loadUninvoiced(ctx, tx, now, clinicianID)
		return err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// loadUninvoiced sums fees of attended, past appointments no invoice references. "Past"
// is relative to now, not to any report range.
func (s *Service) loadUninvoiced(ctx context.Context, tx *gorm.DB, now time.Time, clinicianID string) (decimal.Decimal, error) {
	records, err := s.repo.ListAppointments(ctx, tx, query.New(
		query.StatusIs(ledger.ColAppointmentStatus, ledger.AppointmentStatusShow),
		query.StatusIs(ledger.ColAppointmentType, ledger.AppointmentTypeAppointment),
		query.Before(ledger.ColAppointmentStart, now.UTC()),
		query.NotNull(ledger.ColAppointmentFee),
		query.NotReferenced(ledger.TableInvoiceRefs, ledger.ColInvoiceRefAppointmentID, ledger.ColAppointmentID),
		clinicianIs(ledger.ColAppointmentClinicianID, clinicianID),
	))
	if err != nil {
		return decimal.Zero, err
	}
	s.metrics.RecordLedgerRows(ctx, "appointments", len(records))

	total := decimal.Zero
	for _, line := range ledger.NormalizeAppointments(records) {
		total = total.Add(line.AppointmentFee)
	}
	return total.Round(2), nil
}
