package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/smallbiznis/praxis/internal/ledger/query"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListAppointments(ctx context.Context, db *gorm.DB, f query.Filter) ([]domain.AppointmentRecord, error) {
	var rows []domain.AppointmentRecord
	stmt := db.WithContext(ctx).
		Table(from(domain.TableAppointments)).
		Select(`a.id AS id, a.clinician_id AS clinician_id, a.type AS type, a.status AS status,
			a.start_date AS start_date, a.appointment_fee AS appointment_fee,
			a.write_off AS write_off, a.adjustable_amount AS adjustable_amount`)
	err := f.Apply(stmt).
		Order("a.start_date ASC, a.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return rows, nil
}

func (r *repo) ListIncomeLines(ctx context.Context, db *gorm.DB, f query.Filter) ([]domain.IncomeLineRecord, error) {
	var rows []domain.IncomeLineRecord
	stmt := db.WithContext(ctx).
		Table(from(domain.TablePayments)).
		Select(`p.id AS payment_id, p.payment_date AS payment_date, p.amount AS amount,
			p.credit_applied AS credit_applied, i.id AS invoice_id, i.clinician_id AS clinician_id,
			a.id AS appointment_id, a.appointment_fee AS appointment_fee, a.write_off AS write_off,
			a.adjustable_amount AS adjustable_amount, c.percentage_split AS percentage_split`).
		Joins("JOIN " + from(domain.TableInvoices) + " ON i.id = p.invoice_id").
		Joins("LEFT JOIN " + from(domain.TableAppointments) + " ON a.id = i.appointment_id").
		Joins("LEFT JOIN " + from(domain.TableClinicians) + " ON c.id = i.clinician_id")
	err := f.Apply(stmt).
		Order("p.payment_date ASC, p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list income lines: %w", err)
	}
	return rows, nil
}

// outstandingScope is shared by the page and count queries so both see the same rows.
func outstandingScope(ctx context.Context, db *gorm.DB, f query.Filter) *gorm.DB {
	stmt := db.WithContext(ctx).
		Table(from(domain.TableInvoices)).
		Joins("JOIN " + from(domain.TableClientGroups) + " ON g.id = i.client_group_id")
	return f.Apply(stmt)
}

func (r *repo) CountOutstandingGroups(ctx context.Context, db *gorm.DB, f query.Filter) (int64, error) {
	var total int64
	err := outstandingScope(ctx, db, f).
		Distinct("g.id").
		Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("count outstanding groups: %w", err)
	}
	return total, nil
}

func (r *repo) ListOutstandingGroups(ctx context.Context, db *gorm.DB, f query.Filter, limit, offset int) ([]domain.ClientGroupRecord, error) {
	var rows []domain.ClientGroupRecord
	stmt := outstandingScope(ctx, db, f).
		Select(`g.id AS client_group_id, g.name AS client_group_name,
			rc.first_name AS responsible_first_name, rc.last_name AS responsible_last_name`).
		Joins("LEFT JOIN " + from(domain.TableClients) + " ON rc.id = g.responsible_client_id").
		Group("g.id, g.name, rc.first_name, rc.last_name").
		Order("g.name ASC, g.id ASC")
	if limit > 0 {
		stmt = stmt.Limit(limit).Offset(offset)
	}
	if err := stmt.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list outstanding groups: %w", err)
	}
	return rows, nil
}

func (r *repo) ListInvoices(ctx context.Context, db *gorm.DB, f query.Filter) ([]domain.InvoiceRecord, error) {
	var rows []domain.InvoiceRecord
	stmt := db.WithContext(ctx).
		Table(from(domain.TableInvoices)).
		Select("i.id AS invoice_id, i.client_group_id AS client_group_id, i.amount AS amount")
	err := f.Apply(stmt).
		Order("i.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

func (r *repo) ListPayments(ctx context.Context, db *gorm.DB, f query.Filter) ([]domain.PaymentRecord, error) {
	var rows []domain.PaymentRecord
	stmt := db.WithContext(ctx).
		Table(from(domain.TablePayments)).
		Select("p.id AS payment_id, p.invoice_id AS invoice_id, p.amount AS amount, p.credit_applied AS credit_applied")
	err := f.Apply(stmt).
		Order("p.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return rows, nil
}

func (r *repo) ListNotes(ctx context.Context, db *gorm.DB, f query.Filter) ([]domain.NoteRecord, error) {
	var rows []domain.NoteRecord
	stmt := db.WithContext(ctx).
		Table(from(domain.TableNotes)).
		Select("n.id AS id, n.status AS status").
		Joins("JOIN " + from(domain.TableAppointments) + " ON a.id = n.appointment_id")
	err := f.Apply(stmt).
		Order("n.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return rows, nil
}

func (r *repo) GetClinician(ctx context.Context, db *gorm.DB, id string) (*domain.Clinician, error) {
	var clinician domain.Clinician
	err := db.WithContext(ctx).
		Where("id = ?", id).
		Take(&clinician).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get clinician: %w", err)
	}
	return &clinician, nil
}

func from(t query.Table) string {
	return t.Name + " AS " + t.Alias
}
