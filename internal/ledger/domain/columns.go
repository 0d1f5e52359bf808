package domain

import "github.com/smallbiznis/praxis/internal/ledger/query"

// Table aliases used by every ledger read.
var (
	TableAppointments = query.Table{Name: "appointments", Alias: "a"}
	TableInvoices     = query.Table{Name: "invoices", Alias: "i"}
	TablePayments     = query.Table{Name: "payments", Alias: "p"}
	TableClinicians   = query.Table{Name: "clinicians", Alias: "c"}
	TableClientGroups = query.Table{Name: "client_groups", Alias: "g"}
	TableClients      = query.Table{Name: "clients", Alias: "rc"}
	TableNotes        = query.Table{Name: "appointment_notes", Alias: "n"}

	// TableInvoiceRefs is a second alias over invoices for existence checks.
	TableInvoiceRefs = query.Table{Name: "invoices", Alias: "inv"}
)

const (
	ColAppointmentID          query.Column = "a.id"
	ColAppointmentClinicianID query.Column = "a.clinician_id"
	ColAppointmentStart       query.Column = "a.start_date"
	ColAppointmentStatus      query.Column = "a.status"
	ColAppointmentType        query.Column = "a.type"
	ColAppointmentFee         query.Column = "a.appointment_fee"

	ColInvoiceID            query.Column = "i.id"
	ColInvoiceClinicianID   query.Column = "i.clinician_id"
	ColInvoiceClientGroupID query.Column = "i.client_group_id"
	ColInvoiceIssuedDate    query.Column = "i.issued_date"
	ColInvoiceStatus        query.Column = "i.status"

	ColInvoiceRefAppointmentID query.Column = "inv.appointment_id"

	ColPaymentInvoiceID query.Column = "p.invoice_id"
	ColPaymentDate      query.Column = "p.payment_date"
	ColPaymentStatus    query.Column = "p.status"
)
