// Package revenuesplit divides an amount between a clinician and the practice.
package revenuesplit

import (
	"github.com/shopspring/decimal"
	ledger "github.com/smallbiznis/praxis/internal/ledger/domain"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

// Result is the outcome of one split.
type Result struct {
	ClinicianCut decimal.Decimal
	NetIncome    decimal.Decimal
}

// Split applies pct (0 to 100) to amount. A null pct means no split: the whole amount
// stays with the practice. Rounding happens once on each final value, half away from zero.
func Split(amount decimal.Decimal, pct decimal.NullDecimal) Result {
	if !pct.Valid {
		return Result{ClinicianCut: decimal.Zero, NetIncome: amount}
	}
	cut := amount.Mul(pct.Decimal).Div(hundred).Round(moneyPlaces)
	return Result{
		ClinicianCut: cut,
		NetIncome:    amount.Sub(cut).Round(moneyPlaces),
	}
}

// Basis is the amount a payment row is split on: the linked appointment's adjusted fee
// when the invoice has one, otherwise what the payment settled.
func Basis(line ledger.IncomeLine) decimal.Decimal {
	if line.HasAppointment() {
		return line.AppointmentFee.Add(line.AdjustableAmount).Sub(line.WriteOff)
	}
	return line.Amount.Add(line.CreditApplied)
}
