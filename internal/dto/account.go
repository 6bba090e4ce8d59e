package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walidbs/comptoir/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
// A non-zero opening balance seeds the first ledger entry.
type CreateAccountRequest struct {
	Kind           domain.AccountKind `json:"kind" binding:"required,oneof=SUPPLIER CLIENT"`
	Name           string             `json:"name" binding:"required"`
	Reference      string             `json:"reference" binding:"required"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"` // magnitude, >= 0
	OpeningSign    domain.BalanceSign `json:"openingSign" binding:"omitempty,oneof=CREDIT DEBIT"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string             `json:"accountID"`
	Kind             domain.AccountKind `json:"kind"`
	Name             string             `json:"name"`
	Reference        string             `json:"reference"`
	BalanceMagnitude decimal.Decimal    `json:"balanceMagnitude"`
	BalanceSign      domain.BalanceSign `json:"balanceSign"`
	SignedBalance    decimal.Decimal    `json:"signedBalance"`
	TotalPaid        decimal.Decimal    `json:"totalPaid"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

// ToAccountResponse converts a domain.Account to its response DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        a.AccountID,
		Kind:             a.Kind,
		Name:             a.Name,
		Reference:        a.Reference,
		BalanceMagnitude: a.BalanceMagnitude,
		BalanceSign:      a.BalanceSign,
		SignedBalance:    a.SignedBalance(),
		TotalPaid:        a.TotalPaid,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Kind   string `form:"kind" binding:"omitempty,oneof=SUPPLIER CLIENT"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// BalanceResponse is returned by the current-balance lookup. Balance carries
// the signed value; Magnitude and Sign present the same value the way the
// account screens display it.
type BalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
	Magnitude decimal.Decimal `json:"magnitude"`
	Sign      string          `json:"sign"`
}
