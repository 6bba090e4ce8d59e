package services

import (
	"github.com/walidbs/comptoir/internal/core/ports"
)

// ServiceProvider bundles the service facades handed to the handlers.
type ServiceProvider struct {
	AccountSvc ports.AccountService
	PaymentSvc ports.PaymentService
	LedgerSvc  ports.LedgerService
}

// NewServiceProvider wires the services around the repository provider.
func NewServiceProvider(repos ports.RepositoryProvider) *ServiceProvider {
	return &ServiceProvider{
		AccountSvc: NewAccountService(repos.AccountRepo),
		PaymentSvc: NewPaymentService(repos.PaymentRepo, repos.AccountRepo),
		LedgerSvc:  NewLedgerService(repos.AccountRepo, repos.LedgerRepo, repos.PaymentRepo),
	}
}
