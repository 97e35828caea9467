package domain

import "github.com/shopspring/decimal"

// Transfer is a request to move Amount from one account to another. It is
// built per call and never stored.
type Transfer struct {
	AccountFromID string
	AccountToID   string
	Amount        decimal.Decimal
}
