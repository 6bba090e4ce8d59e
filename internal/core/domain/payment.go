package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records one settlement action against an account. A payment is
// written exactly once, together with its PAYMENT ledger entry, and is never
// updated afterwards.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference"`
	Note        string          `json:"note"`
	CreatedAt   time.Time       `json:"createdAt"`
}
