package revenuesplit

import (
	"testing"

	"github.com/shopspring/decimal"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func pct(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(v))
}

func TestSplit(t *testing.T) {
	cases := []struct {
		name    string
		amount  string
		pct     decimal.NullDecimal
		cut     string
		net     string
	}{
		{"no split", "150.00", decimal.NullDecimal{}, "0", "150.00"},
		{"sixty percent", "150.00", pct("60"), "90.00", "60.00"},
		{"zero percent", "80.00", pct("0"), "0", "80.00"},
		{"full split", "80.00", pct("100"), "80.00", "0"},
		{"rounds half away from zero", "0.25", pct("50"), "0.13", "0.12"},
		{"fractional percent", "99.99", pct("33.33"), "33.33", "66.66"},
		{"negative basis", "-10.05", pct("50"), "-5.03", "-5.02"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(dec(tc.amount), tc.pct)
			assert.True(t, got.ClinicianCut.Equal(dec(tc.cut)), "cut %s", got.ClinicianCut)
			assert.True(t, got.NetIncome.Equal(dec(tc.net)), "net %s", got.NetIncome)
			assert.True(t, got.ClinicianCut.Add(got.NetIncome).Equal(dec(tc.amount)))
		})
	}
}

func TestBasis(t *testing.T) {
	withAppointment := ledger.IncomeLine{
		AppointmentID:    "appt-1",
		Amount:           dec("40"),
		CreditApplied:    dec("10"),
		AppointmentFee:   dec("100"),
		AdjustableAmount: dec("5"),
		WriteOff:         dec("10"),
	}
	assert.True(t, Basis(withAppointment).Equal(dec("95")))

	withoutAppointment := withAppointment
	withoutAppointment.AppointmentID = ""
	assert.True(t, Basis(withoutAppointment).Equal(dec("50")))
}
