package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountID      string          `json:"accountId"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}
	if r.InitialBalance.IsNegative() {
		errs = append(errs, "initialBalance must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r AmountRequest) Validate() error {
	if r.Amount.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

type AccountResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

type BalanceResponse struct {
	AccountID string          `json:"accountId"`
	Balance   decimal.Decimal `json:"balance"`
}

type ClearAccountsResponse struct {
	Cleared bool `json:"cleared"`
}
