package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/middleware"
	"github.com/walidbs/comptoir/internal/utils/balance"
)

// AccountHandler exposes account lifecycle and balance operations over HTTP.
type AccountHandler struct {
	accountService ports.AccountService
	ledgerService  ports.LedgerService
}

func NewAccountHandler(accountSvc ports.AccountService, ledgerSvc ports.LedgerService) *AccountHandler {
	return &AccountHandler{
		accountService: accountSvc,
		ledgerService:  ledgerSvc,
	}
}

// CreateAccount opens a supplier or client account, seeding the ledger with
// an opening entry when a non-zero opening balance is supplied.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind create account request", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Account created",
		slog.String("account_id", account.AccountID),
		slog.String("kind", string(account.Kind)),
	)
	c.JSON(http.StatusCreated, dto.OKWithMessage(dto.ToAccountResponse(account), "account created"))
}

func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for i := range accounts {
		resp.Accounts = append(resp.Accounts, dto.ToAccountResponse(&accounts[i]))
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// DeleteAccount removes an account together with its ledger entries and
// payments.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := c.Param("id")

	if err := h.accountService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	c.JSON(http.StatusOK, dto.OKWithMessage(gin.H{"accountId": accountID}, "account deleted"))
}

// GetBalance reports the account's current signed balance as derived from
// the latest ledger entry.
func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountID := c.Param("id")

	signed, err := h.ledgerService.CurrentBalance(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	magnitude, sign := balance.FromSigned(signed)
	c.JSON(http.StatusOK, dto.OK(dto.BalanceResponse{
		AccountID: accountID,
		Balance:   signed,
		Magnitude: magnitude,
		Sign:      string(sign),
	}))
}
