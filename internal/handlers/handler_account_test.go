package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/walidbs/comptoir/internal/apperrors"
	"github.com/walidbs/comptoir/internal/core/domain"
	"github.com/walidbs/comptoir/internal/core/ports"
	"github.com/walidbs/comptoir/internal/core/services"
	"github.com/walidbs/comptoir/internal/dto"
	"github.com/walidbs/comptoir/internal/handlers"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, params dto.ListAccountsParams) ([]domain.Account, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

var _ ports.AccountService = (*MockAccountService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, req dto.RecordPaymentRequest) (*domain.Payment, *domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	var payment *domain.Payment
	if args.Get(0) != nil {
		payment = args.Get(0).(*domain.Payment)
	}
	var entry *domain.LedgerEntry
	if args.Get(1) != nil {
		entry = args.Get(1).(*domain.LedgerEntry)
	}
	return payment, entry, args.Error(2)
}

func (m *MockPaymentService) RecordInvoice(ctx context.Context, req dto.RecordInvoiceRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

var _ ports.PaymentService = (*MockPaymentService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListEntries(ctx context.Context, accountID string, params dto.ListLedgerEntriesParams) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, accountID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) CurrentBalance(ctx context.Context, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerService) ListPayments(ctx context.Context, accountID string, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, accountID, params)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

var _ ports.LedgerService = (*MockLedgerService)(nil)

// --- Test Suite ---
type AccountHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockAccountService *MockAccountService
	mockPaymentService *MockPaymentService
	mockLedgerService  *MockLedgerService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockAccountService = new(MockAccountService)
	suite.mockPaymentService = new(MockPaymentService)
	suite.mockLedgerService = new(MockLedgerService)

	handlers.RegisterRoutes(suite.router, &services.ServiceProvider{
		AccountSvc: suite.mockAccountService,
		PaymentSvc: suite.mockPaymentService,
		LedgerSvc:  suite.mockLedgerService,
	})
}

func (suite *AccountHandlerTestSuite) do(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	account := &domain.Account{
		AccountID:        "acc-1",
		Kind:             domain.Supplier,
		Name:             "Grossiste Nord",
		Reference:        "SUP-001",
		BalanceMagnitude: decimal.RequireFromString("500"),
		BalanceSign:      domain.Credit,
	}

	suite.mockAccountService.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
		return req.Kind == domain.Supplier && req.Reference == "SUP-001"
	})).Return(account, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"kind":           "SUPPLIER",
		"name":           "Grossiste Nord",
		"reference":      "SUP-001",
		"openingBalance": "500",
		"openingSign":    "CREDIT",
	})

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.Response
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)

	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidKindRejectedAtBinding() {
	w := suite.do(http.MethodPost, "/api/v1/accounts", gin.H{
		"kind":      "VENDOR",
		"name":      "X",
		"reference": "R",
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal(dto.CodeValidation, resp.Code)

	suite.mockAccountService.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockAccountService.On("GetAccountByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("account missing not found")).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.CodeNotFound, resp.Code)
}

func (suite *AccountHandlerTestSuite) TestGetBalance_DebitPresentation() {
	suite.mockLedgerService.On("CurrentBalance", mock.Anything, "acc-2").
		Return(decimal.RequireFromString("-250"), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-2/balance", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp struct {
		Success bool                `json:"success"`
		Data    dto.BalanceResponse `json:"data"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.True(resp.Data.Balance.Equal(decimal.RequireFromString("-250")))
	suite.True(resp.Data.Magnitude.Equal(decimal.RequireFromString("250")))
	suite.Equal("DEBIT", resp.Data.Sign)
}

func (suite *AccountHandlerTestSuite) TestRecordPayment_Success() {
	payment := &domain.Payment{PaymentID: "pay-1", AccountID: "acc-1", Amount: decimal.RequireFromString("200"), Method: "CASH"}
	entry := &domain.LedgerEntry{EntryID: "e-1", AccountID: "acc-1", EntryType: domain.EntryPayment, BalanceAfter: decimal.RequireFromString("300")}

	suite.mockPaymentService.On("RecordPayment", mock.Anything, mock.MatchedBy(func(req dto.RecordPaymentRequest) bool {
		return req.AccountID == "acc-1" && req.Date == "2024-03-15"
	})).Return(payment, entry, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments", gin.H{
		"accountId": "acc-1",
		"amount":    "200",
		"date":      "2024-03-15",
		"method":    "CASH",
	})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestRecordPayment_ValidationFailureFromService() {
	suite.mockPaymentService.On("RecordPayment", mock.Anything, mock.AnythingOfType("dto.RecordPaymentRequest")).
		Return(nil, nil, apperrors.ErrValidation).Once()

	w := suite.do(http.MethodPost, "/api/v1/payments", gin.H{
		"accountId": "acc-1",
		"amount":    "-5",
		"date":      "2024-03-15",
		"method":    "CASH",
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.CodeValidation, resp.Code)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_Success() {
	suite.mockAccountService.On("DeleteAccount", mock.Anything, "acc-1").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/accounts/acc-1", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockAccountService.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestListPayments_ForwardsToken() {
	token := "cursor"
	suite.mockLedgerService.On("ListPayments", mock.Anything, "acc-1", mock.MatchedBy(func(p dto.ListPaymentsParams) bool {
		return p.Limit == 2 && p.NextToken != nil && *p.NextToken == "cursor"
	})).Return([]domain.Payment{{PaymentID: "pay-1"}}, &token, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/accounts/acc-1/payments?limit=2&nextToken=cursor", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockLedgerService.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
