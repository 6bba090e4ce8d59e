package mapping

import (
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/models"
)

// ToModelAccount converts a domain account to its persistence model.
func ToModelAccount(a domain.Account) models.Account {
	return models.Account{
		AccountID:        a.AccountID,
		Kind:             string(a.Kind),
		Name:             a.Name,
		Reference:        a.Reference,
		BalanceMagnitude: a.BalanceMagnitude,
		BalanceSign:      string(a.BalanceSign),
		TotalPaid:        a.TotalPaid,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// ToDomainAccount converts a persistence model back to the domain account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		Kind:             domain.AccountKind(m.Kind),
		Name:             m.Name,
		Reference:        m.Reference,
		BalanceMagnitude: m.BalanceMagnitude,
		BalanceSign:      domain.BalanceSign(m.BalanceSign),
		TotalPaid:        m.TotalPaid,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}

// ToDomainAccountSlice converts a slice of account models.
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	out := make([]domain.Account, len(ms))
	for i, m := range ms {
		out[i] = ToDomainAccount(m)
	}
	return out
}
