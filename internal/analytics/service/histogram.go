package service

import (
	analytics "github.com/smallbiznis/praxis/internal/analytics/domain"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
)

type category struct {
	name     string
	statuses []string
}

// Display order is fixed.
var (
	appointmentCategories = []category{
		{name: "Show", statuses: []string{ledger.AppointmentStatusShow, ledger.AppointmentStatusCompleted}},
		{name: "No Show", statuses: []string{ledger.AppointmentStatusNoShow}},
		{name: "Canceled", statuses: []string{ledger.AppointmentStatusCanceled, ledger.AppointmentStatusCancelled}},
		{name: "Late Canceled", statuses: []string{ledger.AppointmentStatusLateCanceled}},
		{name: "Clinician Canceled", statuses: []string{ledger.AppointmentStatusClinicianCanceled}},
	}
	noteCategories = []category{
		{name: "Assigned", statuses: []string{ledger.NoteStatusAssigned}},
		{name: "In Progress", statuses: []string{ledger.NoteStatusInProgress}},
		{name: "Completed", statuses: []string{ledger.NoteStatusCompleted}},
		{name: "Submitted", statuses: []string{ledger.NoteStatusSubmitted}},
	}
)

// histogram counts statuses into categories in one pass. Statuses outside every
// category still count toward Total.
func histogram(categories []category, statuses []string) analytics.Histogram {
	slot := make(map[string]int)
	for i, c := range categories {
		for _, status := range c.statuses {
			slot[status] = i
		}
	}

	counts := make([]analytics.CategoryCount, len(categories))
	for i, c := range categories {
		counts[i] = analytics.CategoryCount{Name: c.name}
	}
	for _, status := range statuses {
		if i, ok := slot[ledger.NormalizeStatus(status)]; ok {
			counts[i].Count++
		}
	}
	return analytics.Histogram{Total: int64(len(statuses)), Categories: counts}
}
