package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/http/models"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/commons"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/shopspring/decimal"
)

type AccountService interface {
	CreateAccount(ctx context.Context, account domain.Account) error
	FindByID(ctx context.Context, id string) (domain.Account, error)
	GetAll(ctx context.Context) ([]domain.Account, error)
	Clear(ctx context.Context) error
	Credit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
	Debit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	withAuth := func(h http.HandlerFunc) http.Handler {
		if authMiddleware != nil {
			return authMiddleware(h)
		}
		return h
	}

	mux.Handle("POST /v1/accounts", withAuth(c.createAccount))
	mux.Handle("GET /v1/accounts/all", http.HandlerFunc(c.listAccounts))
	mux.Handle("GET /v1/accounts/clear", withAuth(c.clearAccounts))
	mux.Handle("GET /v1/accounts/{accountId}", http.HandlerFunc(c.getAccount))
	mux.Handle("GET /v1/accounts/{accountId}/balances", http.HandlerFunc(c.getBalance))
	mux.Handle("POST /v1/accounts/{accountId}/balance/add", withAuth(c.addBalance))
	mux.Handle("POST /v1/accounts/{accountId}/balance/withdraw", withAuth(c.withdrawBalance))
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()), start)
		return
	}

	if err := req.Validate(); err != nil {
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), start)
		return
	}

	account := domain.NewAccount(req.AccountID, req.InitialBalance)
	if err := c.service.CreateAccount(r.Context(), account); err != nil {
		logError(r, err, nil)
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to create account", err.Error()), start)
		return
	}

	response := commons.SuccessResponse("account created", toAccountResponse(account))
	writeAndLog(w, r, http.StatusCreated, response, start)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)
	accountID := r.PathValue("accountId")

	account, err := c.service.FindByID(r.Context(), accountID)
	if err != nil {
		logError(r, err, accountFields(accountID))
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to fetch account", err.Error()), start)
		return
	}

	writeAndLog(w, r, http.StatusOK, commons.SuccessResponse("account fetched", toAccountResponse(account)), start)
}

func (c *AccountController) getBalance(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)
	accountID := r.PathValue("accountId")

	account, err := c.service.FindByID(r.Context(), accountID)
	if err != nil {
		logError(r, err, accountFields(accountID))
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.BalanceResponse]("failed to fetch balance", err.Error()), start)
		return
	}

	response := commons.SuccessResponse("balance fetched", models.BalanceResponse{
		AccountID: account.ID,
		Balance:   account.Balance,
	})
	writeAndLog(w, r, http.StatusOK, response, start)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)

	accounts, err := c.service.GetAll(r.Context())
	if err != nil {
		logError(r, err, nil)
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[[]models.AccountResponse]("failed to list accounts", err.Error()), start)
		return
	}

	views := make([]models.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		views = append(views, toAccountResponse(account))
	}

	writeAndLog(w, r, http.StatusOK, commons.SuccessResponse("accounts fetched", views), start)
}

func (c *AccountController) clearAccounts(w http.ResponseWriter, r *http.Request) {
	start := logStart(r)

	if err := c.service.Clear(r.Context()); err != nil {
		logError(r, err, nil)
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.ClearAccountsResponse]("failed to clear accounts", err.Error()), start)
		return
	}

	writeAndLog(w, r, http.StatusOK, commons.SuccessResponse("accounts cleared", models.ClearAccountsResponse{Cleared: true}), start)
}

func (c *AccountController) addBalance(w http.ResponseWriter, r *http.Request) {
	c.mutateBalance(w, r, c.service.Credit, "balance added")
}

func (c *AccountController) withdrawBalance(w http.ResponseWriter, r *http.Request) {
	c.mutateBalance(w, r, c.service.Debit, "balance withdrawn")
}

func (c *AccountController) mutateBalance(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error),
	successMessage string,
) {
	start := logStart(r)
	accountID := r.PathValue("accountId")

	var req models.AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, accountFields(accountID))
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()), start)
		return
	}

	if err := req.Validate(); err != nil {
		writeAndLog(w, r, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), start)
		return
	}

	account, err := op(r.Context(), accountID, req.Amount)
	if err != nil {
		logError(r, err, accountFields(accountID))
		writeAndLog(w, r, statusForError(err), commons.ErrorResponse[models.AccountResponse]("failed to update balance", err.Error()), start)
		return
	}

	writeAndLog(w, r, http.StatusCreated, commons.SuccessResponse(successMessage, toAccountResponse(account)), start)
}

func toAccountResponse(account domain.Account) models.AccountResponse {
	return models.AccountResponse{
		AccountID: account.ID,
		Balance:   account.Balance,
	}
}
