package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Appointment types.
const (
	AppointmentTypeAppointment = "APPOINTMENT"
	AppointmentTypeEvent       = "EVENT"
)

// Appointment statuses. Stored values are compared case-insensitively.
const (
	AppointmentStatusScheduled         = "SCHEDULED"
	AppointmentStatusCompleted         = "COMPLETED"
	AppointmentStatusShow              = "SHOW"
	AppointmentStatusNoShow            = "NO_SHOW"
	AppointmentStatusCanceled          = "CANCELED"
	AppointmentStatusCancelled         = "CANCELLED"
	AppointmentStatusLateCanceled      = "LATE_CANCELED"
	AppointmentStatusClinicianCanceled = "CLINICIAN_CANCELED"
)

// Invoice statuses.
const (
	InvoiceStatusDraft   = "DRAFT"
	InvoiceStatusSent    = "SENT"
	InvoiceStatusPaid    = "PAID"
	InvoiceStatusOverdue = "OVERDUE"
	InvoiceStatusVoid    = "VOID"
)

// Payment statuses.
const (
	PaymentStatusCompleted = "Completed"
	PaymentStatusPending   = "Pending"
	PaymentStatusFailed    = "Failed"
	PaymentStatusVoided    = "Voided"
)

// Note statuses.
const (
	NoteStatusAssigned   = "ASSIGNED"
	NoteStatusInProgress = "IN_PROGRESS"
	NoteStatusCompleted  = "COMPLETED"
	NoteStatusSubmitted  = "SUBMITTED"
)

type Appointment struct {
	ID               string              `gorm:"primaryKey;size:36"`
	ClientGroupID    string              `gorm:"size:36;index"`
	ClinicianID      string              `gorm:"size:36;index"`
	Type             string              `gorm:"size:32;not null;default:APPOINTMENT"`
	Status           string              `gorm:"size:32;not null"`
	StartDate        time.Time           `gorm:"not null;index"`
	EndDate          time.Time           `gorm:"not null"`
	AppointmentFee   decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	WriteOff         decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	AdjustableAmount decimal.NullDecimal `gorm:"type:decimal(12,2)"`
}

func (Appointment) TableName() string { return "appointments" }

type Invoice struct {
	ID            string          `gorm:"primaryKey;size:36"`
	AppointmentID *string         `gorm:"size:36;index"`
	ClinicianID   *string         `gorm:"size:36;index"`
	ClientGroupID string          `gorm:"size:36;not null;index"`
	InvoiceNumber string          `gorm:"size:64;not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status        string          `gorm:"size:32;not null"`
	IssuedDate    time.Time       `gorm:"not null;index"`
	DueDate       *time.Time
}

func (Invoice) TableName() string { return "invoices" }

type Payment struct {
	ID            string              `gorm:"primaryKey;size:36"`
	InvoiceID     string              `gorm:"size:36;not null;index"`
	Amount        decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0"`
	CreditApplied decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	PaymentDate   time.Time           `gorm:"not null;index"`
	Status        string              `gorm:"size:32;not null"`
}

func (Payment) TableName() string { return "payments" }

type Clinician struct {
	ID              string              `gorm:"primaryKey;size:36"`
	FirstName       string              `gorm:"size:128"`
	LastName        string              `gorm:"size:128"`
	PercentageSplit decimal.NullDecimal `gorm:"type:decimal(5,2)"`
}

func (Clinician) TableName() string { return "clinicians" }

// FullName joins the clinician's first and last name.
func (c Clinician) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

type ClientGroup struct {
	ID                  string  `gorm:"primaryKey;size:36"`
	Name                string  `gorm:"size:255;not null"`
	ResponsibleClientID *string `gorm:"size:36"`
}

func (ClientGroup) TableName() string { return "client_groups" }

type Client struct {
	ID        string `gorm:"primaryKey;size:36"`
	FirstName string `gorm:"size:128"`
	LastName  string `gorm:"size:128"`
}

func (Client) TableName() string { return "clients" }

type Note struct {
	ID            string `gorm:"primaryKey;size:36"`
	AppointmentID string `gorm:"size:36;not null;index"`
	Status        string `gorm:"size:32;not null"`
}

func (Note) TableName() string { return "appointment_notes" }

// Models lists every ledger table, in dependency order.
func Models() []any {
	return []any{
		&Clinician{},
		&Client{},
		&ClientGroup{},
		&Appointment{},
		&Invoice{},
		&Payment{},
		&Note{},
	}
}
