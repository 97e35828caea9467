package service_interfaces

import (
	"context"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
)

// NotificationService delivers post-transfer messages to account holders.
// Delivery is best effort: a failure here never changes ledger state.
type NotificationService interface {
	NotifyAboutTransfer(ctx context.Context, account domain.Account, message string) error
}
