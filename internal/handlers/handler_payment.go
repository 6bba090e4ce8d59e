package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/middleware"
)

// PaymentHandler exposes the atomic record-payment and record-invoice
// operations.
type PaymentHandler struct {
	paymentService ports.PaymentService
}

func NewPaymentHandler(paymentSvc ports.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentSvc}
}

// RecordPayment books a payment against an account. The payment row, the
// ledger entry and the balance update commit together or not at all.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind record payment request", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	payment, entry, err := h.paymentService.RecordPayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("account_id", payment.AccountID),
		slog.String("amount", payment.Amount.String()),
	)
	c.JSON(http.StatusCreated, dto.OKWithMessage(gin.H{
		"payment": dto.ToPaymentResponse(payment),
		"entry":   dto.ToLedgerEntryResponse(entry),
	}, "payment recorded"))
}

// RecordInvoice books a purchase or sale invoice against an account,
// appending a ledger entry without a payment row.
func (h *PaymentHandler) RecordInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind record invoice request", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	entry, err := h.paymentService.RecordInvoice(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Invoice recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("account_id", entry.AccountID),
		slog.String("type", string(entry.EntryType)),
	)
	c.JSON(http.StatusCreated, dto.OKWithMessage(dto.ToLedgerEntryResponse(entry), "invoice recorded"))
}
