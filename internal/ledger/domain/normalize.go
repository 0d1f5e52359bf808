package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Amount returns the value of a nullable money field, or zero when it is null.
// Every aggregate reads ledger money through this function.
func Amount(v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return v.Decimal
}

// AppointmentLine is an appointment ready for aggregation.
type AppointmentLine struct {
	ID               string
	ClinicianID      string
	Type             string
	Status           string
	StartDate        time.Time
	AppointmentFee   decimal.Decimal
	WriteOff         decimal.Decimal
	AdjustableAmount decimal.Decimal
}

// IncomeLine is a payment row ready for aggregation.
type IncomeLine struct {
	PaymentID        string
	PaymentDate      time.Time
	Amount           decimal.Decimal
	CreditApplied    decimal.Decimal
	InvoiceID        string
	ClinicianID      string
	AppointmentID    string
	AppointmentFee   decimal.Decimal
	WriteOff         decimal.Decimal
	AdjustableAmount decimal.Decimal
	// PercentageSplit stays nullable: null means no split applies, which differs from 0%.
	PercentageSplit decimal.NullDecimal
}

// HasAppointment reports whether the payment's invoice links an appointment.
func (l IncomeLine) HasAppointment() bool {
	return l.AppointmentID != ""
}

// InvoiceLine is an invoice amount ready for aggregation.
type InvoiceLine struct {
	InvoiceID     string
	ClientGroupID string
	Amount        decimal.Decimal
}

// PaymentLine is a payment amount ready for aggregation.
type PaymentLine struct {
	PaymentID     string
	InvoiceID     string
	Amount        decimal.Decimal
	CreditApplied decimal.Decimal
}

// Applied is the total the payment settles on its invoice.
func (p PaymentLine) Applied() decimal.Decimal {
	return p.Amount.Add(p.CreditApplied)
}

func NormalizeAppointments(records []AppointmentRecord) []AppointmentLine {
	out := make([]AppointmentLine, 0, len(records))
	for _, r := range records {
		out = append(out, AppointmentLine{
			ID:               r.ID,
			ClinicianID:      r.ClinicianID,
			Type:             normalizeCode(r.Type),
			Status:           normalizeCode(r.Status),
			StartDate:        r.StartDate,
			AppointmentFee:   Amount(r.AppointmentFee),
			WriteOff:         Amount(r.WriteOff),
			AdjustableAmount: Amount(r.AdjustableAmount),
		})
	}
	return out
}

func NormalizeIncomeLines(records []IncomeLineRecord) []IncomeLine {
	out := make([]IncomeLine, 0, len(records))
	for _, r := range records {
		out = append(out, IncomeLine{
			PaymentID:        r.PaymentID,
			PaymentDate:      r.PaymentDate,
			Amount:           Amount(r.Amount),
			CreditApplied:    Amount(r.CreditApplied),
			InvoiceID:        r.InvoiceID,
			ClinicianID:      deref(r.ClinicianID),
			AppointmentID:    deref(r.AppointmentID),
			AppointmentFee:   Amount(r.AppointmentFee),
			WriteOff:         Amount(r.WriteOff),
			AdjustableAmount: Amount(r.AdjustableAmount),
			PercentageSplit:  r.PercentageSplit,
		})
	}
	return out
}

func NormalizeInvoices(records []InvoiceRecord) []InvoiceLine {
	out := make([]InvoiceLine, 0, len(records))
	for _, r := range records {
		out = append(out, InvoiceLine{
			InvoiceID:     r.InvoiceID,
			ClientGroupID: r.ClientGroupID,
			Amount:        Amount(r.Amount),
		})
	}
	return out
}

func NormalizePayments(records []PaymentRecord) []PaymentLine {
	out := make([]PaymentLine, 0, len(records))
	for _, r := range records {
		out = append(out, PaymentLine{
			PaymentID:     r.PaymentID,
			InvoiceID:     r.InvoiceID,
			Amount:        Amount(r.Amount),
			CreditApplied: Amount(r.CreditApplied),
		})
	}
	return out
}

// NormalizeStatus upper-cases a stored status or type code.
func NormalizeStatus(value string) string {
	return normalizeCode(value)
}

func normalizeCode(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}
