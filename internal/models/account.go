package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the persisted row backing a supplier or client account.
type Account struct {
	AccountID        string          `db:"account_id"`
	Kind             string          `db:"kind"`
	Name             string          `db:"name"`
	Reference        string          `db:"reference"`
	BalanceMagnitude decimal.Decimal `db:"balance_magnitude"`
	BalanceSign      string          `db:"balance_sign"`
	TotalPaid        decimal.Decimal `db:"total_paid"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
