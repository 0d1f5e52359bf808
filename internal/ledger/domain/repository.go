package domain

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go -package=mock

import (
	"context"
	"errors"

	"github.com/smallbiznis/praxis/internal/ledger/query"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("not_found")
)

// Repository reads the ledger. Every method takes the handle to run on so that
// a report can issue all of its reads inside one snapshot.
type Repository interface {
	// ListAppointments reads appointments (alias a) matching f.
	ListAppointments(ctx context.Context, db *gorm.DB, f query.Filter) ([]AppointmentRecord, error)
	// ListIncomeLines reads payments (p) joined to invoices (i), the linked appointment (a)
	// and the invoice clinician (c), ordered by payment date then payment id.
	ListIncomeLines(ctx context.Context, db *gorm.DB, f query.Filter) ([]IncomeLineRecord, error)
	// CountOutstandingGroups counts distinct client groups over invoices (i) matching f.
	CountOutstandingGroups(ctx context.Context, db *gorm.DB, f query.Filter) (int64, error)
	// ListOutstandingGroups pages the client groups over invoices (i) matching f, ordered by
	// group name then id. A non-positive limit returns every group.
	ListOutstandingGroups(ctx context.Context, db *gorm.DB, f query.Filter, limit, offset int) ([]ClientGroupRecord, error)
	// ListInvoices reads invoices (i) matching f.
	ListInvoices(ctx context.Context, db *gorm.DB, f query.Filter) ([]InvoiceRecord, error)
	// ListPayments reads payments (p) matching f.
	ListPayments(ctx context.Context, db *gorm.DB, f query.Filter) ([]PaymentRecord, error)
	// ListNotes reads notes (n) joined to their appointment (a) matching f.
	ListNotes(ctx context.Context, db *gorm.DB, f query.Filter) ([]NoteRecord, error)
	// GetClinician returns ErrNotFound when id does not exist.
	GetClinician(ctx context.Context, db *gorm.DB, id string) (*Clinician, error)
}
