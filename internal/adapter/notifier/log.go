package notifier

import (
	"context"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
)

// LogNotifier writes transfer notifications to the application log. Used when
// no webhook URL is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyAboutTransfer(_ context.Context, account domain.Account, message string) error {
	logger.Info("transfer notification", logger.Fields{
		"accountId": account.ID,
		"message":   message,
	})
	return nil
}
