package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	AccountFromID string          `json:"accountFromId"`
	AccountToID   string          `json:"accountToId"`
	Amount        decimal.Decimal `json:"amount"`
}

// Validate covers request shape only. Business rules (same account,
// sufficiency) belong to the transfer service.
func (r TransferRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountFromID) == "" {
		errs = append(errs, "accountFromId is required")
	}
	if strings.TrimSpace(r.AccountToID) == "" {
		errs = append(errs, "accountToId is required")
	}
	if r.Amount.IsNegative() {
		errs = append(errs, "amount must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransferResponse struct {
	AccountFromID string          `json:"accountFromId"`
	AccountToID   string          `json:"accountToId"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}
