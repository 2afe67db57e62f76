package handler

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/josh-kwaku/scheme-payments/internal/domain"
	"github.com/josh-kwaku/scheme-payments/internal/logging"
)

type accountService interface {
	GetAccount(ctx context.Context, accountNumber string) (*domain.Account, error)
}

type AccountHandler struct {
	accounts accountService
}

func NewAccountHandler(accounts accountService) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

type accountDTO struct {
	AccountNumber  string          `json:"account_number"`
	Balance        decimal.Decimal `json:"balance"`
	Status         string          `json:"status"`
	AllowedSchemes []string        `json:"allowed_schemes"`
}

func toAccountDTO(a *domain.Account) accountDTO {
	return accountDTO{
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance,
		Status:         string(a.Status),
		AllowedSchemes: a.AllowedPaymentSchemes.Strings(),
	}
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	accountNumber := r.PathValue("accountNumber")
	if accountNumber == "" {
		RespondAppError(w, ErrResourceNotFound, nil)
		return
	}

	a, err := h.accounts.GetAccount(r.Context(), accountNumber)
	if err != nil {
		logging.FromContext(r.Context()).Warn("account lookup failed", "error", err)
		RespondDomainError(w, err)
		return
	}

	RespondSuccess(w, http.StatusOK, toAccountDTO(a))
}
