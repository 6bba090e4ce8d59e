package mapping

import (
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/models"
)

// ToModelPayment converts a domain payment to its persistence model.
func ToModelPayment(p domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   p.PaymentID,
		AccountID:   p.AccountID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Reference:   p.Reference,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
	}
}

// ToDomainPayment converts a persistence model back to the domain payment.
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		AccountID:   m.AccountID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Method:      m.Method,
		Reference:   m.Reference,
		Note:        m.Note,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPaymentSlice converts a slice of payment models.
func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	out := make([]domain.Payment, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPayment(m)
	}
	return out
}
