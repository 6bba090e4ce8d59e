package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/dto"
)

// LedgerHandler exposes the read side of the ledger: entry history and the
// payments listing.
type LedgerHandler struct {
	ledgerService ports.LedgerService
}

func NewLedgerHandler(ledgerSvc ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerSvc}
}

// ListEntries returns an account's ledger in statement order: oldest first,
// each entry carrying the balance after it was applied.
func (h *LedgerHandler) ListEntries(c *gin.Context) {
	accountID := c.Param("id")

	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	entries, err := h.ledgerService.ListEntries(c.Request.Context(), accountID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(gin.H{"entries": dto.ToLedgerEntryResponses(entries)}))
}

// ListPayments returns a page of the account's payments, most recent first.
func (h *LedgerHandler) ListPayments(c *gin.Context) {
	accountID := c.Param("id")

	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	payments, nextToken, err := h.ledgerService.ListPayments(c.Request.Context(), accountID, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}))
}
