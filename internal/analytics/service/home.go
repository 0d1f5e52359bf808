package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smallbiznis/praxis/internal/analytics/daterange"
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"gorm.io/gorm"
)

func (s *Service) GetHomeSummary(ctx context.Context, req analytics.HomeRequest) (analytics.HomeSummary, error) {
	r, err := daterange.ParseStrict(req.StartDate, req.EndDate, s.reporting.Get().Location())
	if err != nil {
		return analytics.HomeSummary{}, s.invalid(ctx, opHomeSummary, err)
	}

	start, end := r.UTC()
	f := query.New(
		query.Between(ledger.ColAppointmentStart, start, end),
		query.StatusIs(ledger.ColAppointmentStatus, ledger.AppointmentStatusCompleted),
		clinicianIs(ledger.ColAppointmentClinicianID, req.ClinicianID),
	)

	var lines []ledger.AppointmentLine
	sc := scope{op: opHomeSummary, granularity: string(r.Granularity), start: start, end: end, clinicianID: req.ClinicianID, filter: f}
	err = s.read(ctx, sc, func(ctx context.Context, tx *gorm.DB) error {
		records, err := s.repo.ListAppointments(ctx, tx, f)
		if err != nil {
			return err
		}
		s.metrics.RecordLedgerRows(ctx, "appointments", len(records))
		lines = ledger.NormalizeAppointments(records)
		return nil
	})
	if err != nil {
		return analytics.HomeSummary{}, err
	}

	summary := summarizeHome(lines)
	summary.StartDate = r.StartDate()
	summary.EndDate = r.EndDate()
	return summary, nil
}

// summarizeHome sums per appointment after nulls were zeroed, so a null fee with a
// write-off contributes a negative payment.
func summarizeHome(lines []ledger.AppointmentLine) analytics.HomeSummary {
	gross := decimal.Zero
	payments := decimal.Zero
	for _, line := range lines {
		gross = gross.Add(line.AppointmentFee)
		payments = payments.Add(line.AppointmentFee.Sub(line.WriteOff).Sub(line.AdjustableAmount))
	}
	return analytics.HomeSummary{
		GrossIncome:         gross.Round(2),
		TotalClientPayments: payments.Round(2),
		NetIncome:           gross.Round(2),
	}
}
