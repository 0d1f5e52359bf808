package repository

import (
	"context"
	"testing"
	"time"

	"github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/ledgertest"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rangeStart = ledgertest.Day(2024, time.January, 1)
	rangeEnd   = ledgertest.Day(2024, time.January, 31, 23)
)

func newRepo(t *testing.T) *repo {
	t.Helper()
	return &repo{}
}

func TestListIncomeLinesJoinsInvoiceAppointmentAndSplit(t *testing.T) {
	conn := ledgertest.Open(t)
	ledgertest.Seed(t, conn,
		&domain.Clinician{ID: "clin-1", FirstName: "Ada", LastName: "Reyes", PercentageSplit: ledgertest.NullMoney("60")},
		&domain.ClientGroup{ID: "grp-1", Name: "Smith Family"},
		&domain.Appointment{
			ID: "appt-1", ClientGroupID: "grp-1", ClinicianID: "clin-1",
			Type: domain.AppointmentTypeAppointment, Status: domain.AppointmentStatusShow,
			StartDate: ledgertest.Day(2024, time.January, 10, 9), EndDate: ledgertest.Day(2024, time.January, 10, 10),
			AppointmentFee: ledgertest.NullMoney("150"), WriteOff: ledgertest.NullMoney("10"),
		},
		&domain.Invoice{
			ID: "inv-1", AppointmentID: ledgertest.Ptr("appt-1"), ClinicianID: ledgertest.Ptr("clin-1"),
			ClientGroupID: "grp-1", InvoiceNumber: "INV-0001", Amount: ledgertest.Money("150"),
			Status: domain.InvoiceStatusPaid, IssuedDate: ledgertest.Day(2024, time.January, 10),
		},
		&domain.Invoice{
			ID: "inv-2", ClientGroupID: "grp-1", InvoiceNumber: "INV-0002", Amount: ledgertest.Money("40"),
			Status: domain.InvoiceStatusPaid, IssuedDate: ledgertest.Day(2024, time.January, 11),
		},
		&domain.Payment{ID: "pay-2", InvoiceID: "inv-2", Amount: ledgertest.Money("40"),
			PaymentDate: ledgertest.Day(2024, time.January, 12), Status: domain.PaymentStatusCompleted},
		&domain.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: ledgertest.Money("100"),
			CreditApplied: ledgertest.NullMoney("50"),
			PaymentDate:   ledgertest.Day(2024, time.January, 11), Status: domain.PaymentStatusCompleted},
		&domain.Payment{ID: "pay-3", InvoiceID: "inv-1", Amount: ledgertest.Money("5"),
			PaymentDate: ledgertest.Day(2024, time.January, 13), Status: domain.PaymentStatusFailed},
		&domain.Payment{ID: "pay-4", InvoiceID: "inv-1", Amount: ledgertest.Money("7"),
			PaymentDate: ledgertest.Day(2024, time.February, 2), Status: domain.PaymentStatusCompleted},
	)

	r := newRepo(t)
	f := query.New(
		query.Between(domain.ColPaymentDate, rangeStart, rangeEnd),
		query.StatusIs(domain.ColPaymentStatus, domain.PaymentStatusCompleted),
	)
	records, err := r.ListIncomeLines(context.Background(), conn, f)
	require.NoError(t, err)
	require.Len(t, records, 2)

	lines := domain.NormalizeIncomeLines(records)
	assert.Equal(t, "pay-1", lines[0].PaymentID)
	assert.Equal(t, "appt-1", lines[0].AppointmentID)
	assert.Equal(t, "clin-1", lines[0].ClinicianID)
	assert.True(t, lines[0].Amount.Equal(ledgertest.Money("100")))
	assert.True(t, lines[0].CreditApplied.Equal(ledgertest.Money("50")))
	assert.True(t, lines[0].AppointmentFee.Equal(ledgertest.Money("150")))
	assert.True(t, lines[0].WriteOff.Equal(ledgertest.Money("10")))
	assert.True(t, lines[0].AdjustableAmount.IsZero())
	require.True(t, lines[0].PercentageSplit.Valid)
	assert.True(t, lines[0].PercentageSplit.Decimal.Equal(ledgertest.Money("60")))

	assert.Equal(t, "pay-2", lines[1].PaymentID)
	assert.False(t, lines[1].HasAppointment())
	assert.Empty(t, lines[1].ClinicianID)
	assert.False(t, lines[1].PercentageSplit.Valid)
	assert.True(t, lines[1].CreditApplied.IsZero())
}

func TestOutstandingGroupsPageAndCountAgree(t *testing.T) {
	conn := ledgertest.Open(t)
	ledgertest.Seed(t, conn,
		&domain.Client{ID: "cl-1", FirstName: "Jane", LastName: "Smith"},
		&domain.ClientGroup{ID: "grp-b", Name: "Brown Family"},
		&domain.ClientGroup{ID: "grp-a", Name: "Adams Family", ResponsibleClientID: ledgertest.Ptr("cl-1")},
		&domain.ClientGroup{ID: "grp-c", Name: "Carter Family"},
	)
	invoice := func(id, group, status string, day int) *domain.Invoice {
		return &domain.Invoice{
			ID: id, ClientGroupID: group, InvoiceNumber: id, Amount: ledgertest.Money("100"),
			Status: status, IssuedDate: ledgertest.Day(2024, time.January, day),
		}
	}
	ledgertest.Seed(t, conn,
		invoice("inv-1", "grp-a", domain.InvoiceStatusSent, 3),
		invoice("inv-2", "grp-a", "overdue", 4),
		invoice("inv-3", "grp-b", domain.InvoiceStatusOverdue, 5),
		invoice("inv-4", "grp-c", domain.InvoiceStatusPaid, 6),
		invoice("inv-5", "grp-orphan", domain.InvoiceStatusSent, 6),
	)

	r := newRepo(t)
	f := query.New(
		query.Between(domain.ColInvoiceIssuedDate, rangeStart, rangeEnd),
		query.StatusIn(domain.ColInvoiceStatus, domain.InvoiceStatusSent, domain.InvoiceStatusOverdue),
	)
	ctx := context.Background()

	total, err := r.CountOutstandingGroups(ctx, conn, f)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)

	all, err := r.ListOutstandingGroups(ctx, conn, f, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "grp-a", all[0].ClientGroupID)
	assert.Equal(t, "Jane Smith", all[0].ResponsibleClientName())
	assert.Equal(t, "grp-b", all[1].ClientGroupID)
	assert.Empty(t, all[1].ResponsibleClientName())

	page, err := r.ListOutstandingGroups(ctx, conn, f, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Brown Family", page[0].ClientGroupName)
}

func TestListAppointmentsAndNotes(t *testing.T) {
	conn := ledgertest.Open(t)
	appt := func(id, status, typ string, start time.Time) *domain.Appointment {
		return &domain.Appointment{
			ID: id, ClinicianID: "clin-1", Type: typ, Status: status,
			StartDate: start, EndDate: start.Add(time.Hour),
		}
	}
	ledgertest.Seed(t, conn,
		appt("appt-1", "show", domain.AppointmentTypeAppointment, ledgertest.Day(2024, time.January, 2, 9)),
		appt("appt-2", domain.AppointmentStatusCanceled, domain.AppointmentTypeEvent, ledgertest.Day(2024, time.January, 3, 9)),
		appt("appt-3", domain.AppointmentStatusShow, domain.AppointmentTypeAppointment, ledgertest.Day(2024, time.March, 3, 9)),
		&domain.Note{ID: "note-1", AppointmentID: "appt-1", Status: domain.NoteStatusCompleted},
		&domain.Note{ID: "note-2", AppointmentID: "appt-3", Status: domain.NoteStatusAssigned},
	)

	r := newRepo(t)
	ctx := context.Background()
	inRange := query.New(query.Between(domain.ColAppointmentStart, rangeStart, rangeEnd))

	records, err := r.ListAppointments(ctx, conn, inRange.With(
		query.StatusIs(domain.ColAppointmentType, domain.AppointmentTypeAppointment),
	))
	require.NoError(t, err)
	require.Len(t, records, 1)
	lines := domain.NormalizeAppointments(records)
	assert.Equal(t, domain.AppointmentStatusShow, lines[0].Status)
	assert.True(t, lines[0].AppointmentFee.IsZero())

	notes, err := r.ListNotes(ctx, conn, inRange)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "note-1", notes[0].ID)
}

func TestListAppointmentsNotReferencedByInvoice(t *testing.T) {
	conn := ledgertest.Open(t)
	start := ledgertest.Day(2024, time.January, 5, 9)
	ledgertest.Seed(t, conn,
		&domain.Appointment{ID: "appt-1", ClinicianID: "clin-1", Type: domain.AppointmentTypeAppointment,
			Status: domain.AppointmentStatusShow, StartDate: start, EndDate: start.Add(time.Hour),
			AppointmentFee: ledgertest.NullMoney("120")},
		&domain.Appointment{ID: "appt-2", ClinicianID: "clin-1", Type: domain.AppointmentTypeAppointment,
			Status: domain.AppointmentStatusShow, StartDate: start, EndDate: start.Add(time.Hour),
			AppointmentFee: ledgertest.NullMoney("80")},
		&domain.Invoice{ID: "inv-1", AppointmentID: ledgertest.Ptr("appt-2"), ClientGroupID: "grp-1",
			InvoiceNumber: "INV-1", Amount: ledgertest.Money("80"), Status: domain.InvoiceStatusSent,
			IssuedDate: start},
	)

	r := newRepo(t)
	records, err := r.ListAppointments(context.Background(), conn, query.New(
		query.NotNull(domain.ColAppointmentFee),
		query.NotReferenced(domain.TableInvoiceRefs, domain.ColInvoiceRefAppointmentID, domain.ColAppointmentID),
	))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "appt-1", records[0].ID)
}

func TestListInvoicesAndPayments(t *testing.T) {
	conn := ledgertest.Open(t)
	day := ledgertest.Day(2024, time.January, 8)
	ledgertest.Seed(t, conn,
		&domain.Invoice{ID: "inv-1", ClientGroupID: "grp-1", InvoiceNumber: "INV-1",
			Amount: ledgertest.Money("200"), Status: domain.InvoiceStatusSent, IssuedDate: day},
		&domain.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: ledgertest.Money("50"),
			CreditApplied: ledgertest.NullMoney("25"), PaymentDate: day, Status: domain.PaymentStatusCompleted},
	)

	r := newRepo(t)
	ctx := context.Background()
	invoices, err := r.ListInvoices(ctx, conn, query.New(query.In(domain.ColInvoiceClientGroupID, "grp-1")))
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.True(t, domain.NormalizeInvoices(invoices)[0].Amount.Equal(ledgertest.Money("200")))

	payments, err := r.ListPayments(ctx, conn, query.New(query.In(domain.ColPaymentInvoiceID, "inv-1")))
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.True(t, domain.NormalizePayments(payments)[0].Applied().Equal(ledgertest.Money("75")))
}

func TestListPaymentsForInvoiceSubquery(t *testing.T) {
	conn := ledgertest.Open(t)
	day := ledgertest.Day(2024, time.January, 8)
	ledgertest.Seed(t, conn,
		&domain.Invoice{ID: "inv-1", ClientGroupID: "grp-1", InvoiceNumber: "INV-1",
			Amount: ledgertest.Money("200"), Status: domain.InvoiceStatusSent, IssuedDate: day},
		&domain.Invoice{ID: "inv-2", ClientGroupID: "grp-1", InvoiceNumber: "INV-2",
			Amount: ledgertest.Money("90"), Status: domain.InvoiceStatusPaid, IssuedDate: day},
		&domain.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: ledgertest.Money("50"),
			PaymentDate: day, Status: domain.PaymentStatusCompleted},
		&domain.Payment{ID: "pay-2", InvoiceID: "inv-2", Amount: ledgertest.Money("90"),
			PaymentDate: day, Status: domain.PaymentStatusCompleted},
	)

	sent := query.New(query.StatusIs(domain.ColInvoiceStatus, domain.InvoiceStatusSent))
	payments, err := newRepo(t).ListPayments(context.Background(), conn, query.New(
		query.InSelect(domain.ColPaymentInvoiceID, domain.TableInvoices, domain.ColInvoiceID, sent),
	))
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, "pay-1", payments[0].PaymentID)
}

func TestGetClinician(t *testing.T) {
	conn := ledgertest.Open(t)
	ledgertest.Seed(t, conn, &domain.Clinician{ID: "clin-1", FirstName: "Ada", LastName: "Reyes"})

	r := newRepo(t)
	ctx := context.Background()
	clinician, err := r.GetClinician(ctx, conn, "clin-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada Reyes", clinician.FullName())

	_, err = r.GetClinician(ctx, conn, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
