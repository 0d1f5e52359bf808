package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentRecord is an appointment as read from the ledger, nulls intact.
type AppointmentRecord struct {
	ID               string              `gorm:"column:id"`
	ClinicianID      string              `gorm:"column:clinician_id"`
	Type             string              `gorm:"column:type"`
	Status           string              `gorm:"column:status"`
	StartDate        time.Time           `gorm:"column:start_date"`
	AppointmentFee   decimal.NullDecimal `gorm:"column:appointment_fee"`
	WriteOff         decimal.NullDecimal `gorm:"column:write_off"`
	AdjustableAmount decimal.NullDecimal `gorm:"column:adjustable_amount"`
}

// IncomeLineRecord is one completed payment joined to its invoice, the invoice's linked
// appointment when present, and the invoice clinician's split.
type IncomeLineRecord struct {
	PaymentID        string              `gorm:"column:payment_id"`
	PaymentDate      time.Time           `gorm:"column:payment_date"`
	Amount           decimal.NullDecimal `gorm:"column:amount"`
	CreditApplied    decimal.NullDecimal `gorm:"column:credit_applied"`
	InvoiceID        string              `gorm:"column:invoice_id"`
	ClinicianID      *string             `gorm:"column:clinician_id"`
	AppointmentID    *string             `gorm:"column:appointment_id"`
	AppointmentFee   decimal.NullDecimal `gorm:"column:appointment_fee"`
	WriteOff         decimal.NullDecimal `gorm:"column:write_off"`
	AdjustableAmount decimal.NullDecimal `gorm:"column:adjustable_amount"`
	PercentageSplit  decimal.NullDecimal `gorm:"column:percentage_split"`
}

// ClientGroupRecord is one client group with an outstanding invoice in range.
type ClientGroupRecord struct {
	ClientGroupID        string  `gorm:"column:client_group_id"`
	ClientGroupName      string  `gorm:"column:client_group_name"`
	ResponsibleFirstName *string `gorm:"column:responsible_first_name"`
	ResponsibleLastName  *string `gorm:"column:responsible_last_name"`
}

// ResponsibleClientName is the billing contact's display name, empty when unlinked.
func (r ClientGroupRecord) ResponsibleClientName() string {
	return joinName(deref(r.ResponsibleFirstName), deref(r.ResponsibleLastName))
}

// InvoiceRecord is an invoice amount attributed to a client group.
type InvoiceRecord struct {
	InvoiceID     string              `gorm:"column:invoice_id"`
	ClientGroupID string              `gorm:"column:client_group_id"`
	Amount        decimal.NullDecimal `gorm:"column:amount"`
}

// PaymentRecord is a payment applied to an invoice.
type PaymentRecord struct {
	PaymentID     string              `gorm:"column:payment_id"`
	InvoiceID     string              `gorm:"column:invoice_id"`
	Amount        decimal.NullDecimal `gorm:"column:amount"`
	CreditApplied decimal.NullDecimal `gorm:"column:credit_applied"`
}

// NoteRecord carries a note's status.
type NoteRecord struct {
	ID     string `gorm:"column:id"`
	Status string `gorm:"column:status"`
}

func joinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
