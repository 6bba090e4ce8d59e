package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/walidbs/comptoir/internal/core/services"
)

// registerCustomValidators adds the isodate rule used by the payment and
// invoice request bindings (dates travel as YYYY-MM-DD strings).
func registerCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(time.DateOnly, fl.Field().String())
			return err == nil
		})
	}
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, svc *services.ServiceProvider) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, svc)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, svc *services.ServiceProvider) {
	v1 := r.Group("/api/v1")

	registerAccountRoutes(v1, svc)
	registerPaymentRoutes(v1, svc)
}

func registerAccountRoutes(rg *gin.RouterGroup, svc *services.ServiceProvider) {
	accountHandler := NewAccountHandler(svc.AccountSvc, svc.LedgerSvc)
	ledgerHandler := NewLedgerHandler(svc.LedgerSvc)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", accountHandler.CreateAccount)
		accounts.GET("", accountHandler.ListAccounts)
		accounts.GET("/:id", accountHandler.GetAccount)
		accounts.DELETE("/:id", accountHandler.DeleteAccount)
		accounts.GET("/:id/balance", accountHandler.GetBalance)
		accounts.GET("/:id/ledger", ledgerHandler.ListEntries)
		accounts.GET("/:id/payments", ledgerHandler.ListPayments)
	}
}

func registerPaymentRoutes(rg *gin.RouterGroup, svc *services.ServiceProvider) {
	paymentHandler := NewPaymentHandler(svc.PaymentSvc)

	rg.POST("/payments", paymentHandler.RecordPayment)
	rg.POST("/invoices", paymentHandler.RecordInvoice)
}
