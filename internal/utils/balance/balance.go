package balance

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/walidbs/comptoir/internal/core/domain"
)

// ToSigned converts a stored magnitude+sign pair into a single signed value.
func ToSigned(magnitude decimal.Decimal, sign domain.BalanceSign) decimal.Decimal {
	if sign == domain.Debit {
		return magnitude.Neg()
	}
	return magnitude
}

// FromSigned splits a signed value back into magnitude and sign. Zero is
// stored on the credit side.
func FromSigned(signed decimal.Decimal) (decimal.Decimal, domain.BalanceSign) {
	if signed.IsNegative() {
		return signed.Neg(), domain.Debit
	}
	return signed, domain.Credit
}

// PaymentMovement returns the (debit, credit) columns for a settlement on the
// given account kind. The signed balance reads "what the business owes the
// counterparty": paying a supplier debits the payable, a client paying us
// credits their debt down.
func PaymentMovement(kind domain.AccountKind, amount decimal.Decimal) (debit, credit decimal.Decimal, err error) {
	switch kind {
	case domain.Supplier:
		return amount, decimal.Zero, nil
	case domain.Client:
		return decimal.Zero, amount, nil
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("unknown account kind '%s'", kind)
	}
}

// InvoiceMovement returns the (debit, credit) columns for a credit invoice:
// a purchase increases what we owe the supplier, a sale increases what the
// client owes us.
func InvoiceMovement(kind domain.AccountKind, amount decimal.Decimal) (debit, credit decimal.Decimal, err error) {
	switch kind {
	case domain.Supplier:
		return decimal.Zero, amount, nil
	case domain.Client:
		return amount, decimal.Zero, nil
	default:
		return decimal.Zero, decimal.Zero, fmt.Errorf("unknown account kind '%s'", kind)
	}
}

// ApplyMovement computes the signed balance after an entry is applied.
// Every entry type uses the same algebra, which is what keeps the ledger
// re-balancing invariant uniform across payments, invoices and opening
// balances.
func ApplyMovement(currentSigned, debit, credit decimal.Decimal) decimal.Decimal {
	return currentSigned.Add(credit).Sub(debit)
}

// OpeningMovement returns the (debit, credit) columns for an opening balance
// entry so that BalanceAfter lands exactly on ToSigned(magnitude, sign).
func OpeningMovement(magnitude decimal.Decimal, sign domain.BalanceSign) (debit, credit decimal.Decimal) {
	if sign == domain.Debit {
		return magnitude, decimal.Zero
	}
	return decimal.Zero, magnitude
}
