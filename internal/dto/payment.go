package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walidbs/comptoir/internal/core/domain"
)

// RecordPaymentRequest is the record-payment contract. Date is an ISO date
// (2006-01-02); parsing happens in the service so malformed input is
// classified as a validation error before anything is written.
type RecordPaymentRequest struct {
	AccountID string          `json:"accountId" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"required,isodate"`
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference"`
	Note      string          `json:"note"`
}

// RecordInvoiceRequest books a credit invoice against an account: a PURCHASE
// entry for suppliers, a SALE entry for clients.
type RecordInvoiceRequest struct {
	AccountID   string          `json:"accountId" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,isodate"`
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"`
	Date      string          `json:"date"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		AccountID: p.AccountID,
		Amount:    p.Amount,
		Date:      p.PaymentDate.Format(time.DateOnly),
		Method:    p.Method,
		Reference: p.Reference,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of payments.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}

// ListPaymentsParams defines query parameters for the payments listing.
type ListPaymentsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPaymentsResponse wraps a page of payments, most recent first.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}
