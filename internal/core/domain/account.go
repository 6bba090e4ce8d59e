package domain

import (
	"github.com/shopspring/decimal"
)

// AccountKind distinguishes supplier accounts from client accounts.
type AccountKind string

const (
	Supplier AccountKind = "SUPPLIER"
	Client   AccountKind = "CLIENT"
)

// BalanceSign encodes which way the stored balance magnitude points.
// CREDIT means the business owes the counterparty, DEBIT means the
// counterparty owes the business.
type BalanceSign string

const (
	Credit BalanceSign = "CREDIT"
	Debit  BalanceSign = "DEBIT"
)

// Account is the financial relationship record for one supplier or client.
// The balance is persisted as a non-negative magnitude plus a sign flag;
// the signed balance is derived, never stored.
type Account struct {
	AccountID        string          `json:"accountID"`
	Kind             AccountKind     `json:"kind"`
	Name             string          `json:"name"`
	Reference        string          `json:"reference"` // unique business code
	BalanceMagnitude decimal.Decimal `json:"balanceMagnitude"`
	BalanceSign      BalanceSign     `json:"balanceSign"`
	TotalPaid        decimal.Decimal `json:"totalPaid"` // cumulative, client accounts only
	AuditFields
}

// SignedBalance derives the single signed number from magnitude and sign.
func (a Account) SignedBalance() decimal.Decimal {
	if a.BalanceSign == Debit {
		return a.BalanceMagnitude.Neg()
	}
	return a.BalanceMagnitude
}
