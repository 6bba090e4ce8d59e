package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the persisted row for one settlement action.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	AccountID   string          `db:"account_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Method      string          `db:"method"`
	Reference   string          `db:"reference"`
	Note        string          `db:"note"`
	CreatedAt   time.Time       `db:"created_at"`
}
