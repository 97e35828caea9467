package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/usecase/service_interfaces"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultLockMaxAttempts = 1000
	DefaultLockRetryDelay  = 100 * time.Microsecond

	notifyTimeout = 10 * time.Second
)

// TransferService moves money between two accounts exactly once: validate,
// lock both accounts in SortKey order, re-verify funds, debit then credit,
// and compensate the debit if the credit cannot complete.
type TransferService struct {
	accounts        *AccountService
	guard           *AccountGuard
	notifications   service_interfaces.NotificationService
	lockMaxAttempts int
	lockRetryDelay  time.Duration
}

func NewTransferService(
	accounts *AccountService,
	guard *AccountGuard,
	notifications service_interfaces.NotificationService,
	lockMaxAttempts int,
	lockRetryDelay time.Duration,
) *TransferService {
	if lockMaxAttempts <= 0 {
		lockMaxAttempts = DefaultLockMaxAttempts
	}
	if lockRetryDelay <= 0 {
		lockRetryDelay = DefaultLockRetryDelay
	}
	return &TransferService{
		accounts:        accounts,
		guard:           guard,
		notifications:   notifications,
		lockMaxAttempts: lockMaxAttempts,
		lockRetryDelay:  lockRetryDelay,
	}
}

// Transfer executes the requested transfer. Validation failures surface
// before any lock is taken or balance touched. Lock acquisition is bounded;
// exhausting the retry ceiling fails with ErrTransferNotProcessed.
func (s *TransferService) Transfer(ctx context.Context, transfer domain.Transfer) error {
	logger.Info("transfer service requested money transfer", logger.Fields{
		"accountFromId": transfer.AccountFromID,
		"accountToId":   transfer.AccountToID,
		"amount":        transfer.Amount.String(),
	})

	from, to, err := s.validate(ctx, transfer)
	if err != nil {
		logger.Error("transfer service validation failed", err, logger.Fields{
			"accountFromId": transfer.AccountFromID,
			"accountToId":   transfer.AccountToID,
		})
		return err
	}

	first, second := orderForLocking(from, to)
	firstMu := s.guard.Mutex(first.ID)
	secondMu := s.guard.Mutex(second.ID)

	acquired := false
	for attempt := 0; attempt < s.lockMaxAttempts; attempt++ {
		if firstMu.TryLock() {
			if secondMu.TryLock() {
				acquired = true
				break
			}
			firstMu.Unlock()
		}
		time.Sleep(s.lockRetryDelay)
	}
	if !acquired {
		logger.Error("transfer service lock acquisition exhausted", domain.ErrTransferNotProcessed, logger.Fields{
			"accountFromId": transfer.AccountFromID,
			"accountToId":   transfer.AccountToID,
			"attempts":      s.lockMaxAttempts,
		})
		return domain.ErrTransferNotProcessed
	}

	err = func() error {
		defer firstMu.Unlock()
		defer secondMu.Unlock()

		// Balances may have changed between validation and lock acquisition.
		if err := s.verifyFunds(ctx, transfer); err != nil {
			return err
		}
		return s.makeTransfer(ctx, transfer)
	}()
	if err != nil {
		logger.Error("transfer service cannot process transfer", err, logger.Fields{
			"accountFromId": transfer.AccountFromID,
			"accountToId":   transfer.AccountToID,
			"amount":        transfer.Amount.String(),
		})
		return err
	}

	s.notifyParticipants(transfer)

	logger.Info("transfer service transfer completed", logger.Fields{
		"accountFromId": transfer.AccountFromID,
		"accountToId":   transfer.AccountToID,
		"amount":        transfer.Amount.String(),
	})
	return nil
}

// validate rejects the transfer before any lock is taken. The same-account
// check runs first so that a self-transfer always reports ErrSameAccount, no
// matter what amount it carries.
func (s *TransferService) validate(ctx context.Context, transfer domain.Transfer) (domain.Account, domain.Account, error) {
	if transfer.AccountFromID == transfer.AccountToID {
		return domain.Account{}, domain.Account{}, domain.ErrSameAccount
	}
	if transfer.Amount.IsNegative() {
		return domain.Account{}, domain.Account{}, domain.ErrInvalidAmount
	}

	from, err := s.accounts.FindByID(ctx, transfer.AccountFromID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}
	to, err := s.accounts.FindByID(ctx, transfer.AccountToID)
	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	if from.Balance.LessThan(transfer.Amount) {
		return domain.Account{}, domain.Account{}, domain.ErrInsufficientFunds
	}
	return from, to, nil
}

func (s *TransferService) verifyFunds(ctx context.Context, transfer domain.Transfer) error {
	from, err := s.accounts.FindByID(ctx, transfer.AccountFromID)
	if err != nil {
		return err
	}
	if from.Balance.LessThan(transfer.Amount) {
		return domain.ErrInsufficientFunds
	}
	return nil
}

// makeTransfer runs with both account locks held. A credit failure after the
// debit committed triggers the compensating credit of the source; if that
// compensation fails too, the discrepancy needs operator attention and the
// call reports ErrTransferNotProcessed.
func (s *TransferService) makeTransfer(ctx context.Context, transfer domain.Transfer) error {
	if _, err := s.accounts.debitLocked(ctx, transfer.AccountFromID, transfer.Amount); err != nil {
		return err
	}

	if _, err := s.accounts.creditLocked(ctx, transfer.AccountToID, transfer.Amount); err != nil {
		logger.Error("transfer service credit failed, rolling back debit", err, logger.Fields{
			"accountFromId": transfer.AccountFromID,
			"accountToId":   transfer.AccountToID,
			"amount":        transfer.Amount.String(),
		})
		if _, rbErr := s.accounts.creditLocked(ctx, transfer.AccountFromID, transfer.Amount); rbErr != nil {
			logger.Error("transfer service rollback failed, manual reconciliation required", rbErr, logger.Fields{
				"accountFromId": transfer.AccountFromID,
				"accountToId":   transfer.AccountToID,
				"stuckAmount":   transfer.Amount.String(),
			})
			return fmt.Errorf("%w: rollback of debit failed: %v", domain.ErrTransferNotProcessed, rbErr)
		}
		return err
	}
	return nil
}

// notifyParticipants tells both account holders about the committed transfer.
// It runs after the locks are released and never affects the transfer result.
func (s *TransferService) notifyParticipants(transfer domain.Transfer) {
	if s.notifications == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return s.notifyAccount(ctx, transfer.AccountFromID,
				fmt.Sprintf("Money was sent from your account to %s in amount %s",
					transfer.AccountToID, transfer.Amount.String()))
		})
		g.Go(func() error {
			return s.notifyAccount(ctx, transfer.AccountToID,
				fmt.Sprintf("Your account was deposited from %s in amount %s",
					transfer.AccountFromID, transfer.Amount.String()))
		})
		if err := g.Wait(); err != nil {
			logger.Error("transfer service notification failed", err, logger.Fields{
				"accountFromId": transfer.AccountFromID,
				"accountToId":   transfer.AccountToID,
			})
		}
	}()
}

func (s *TransferService) notifyAccount(ctx context.Context, id string, message string) error {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.notifications.NotifyAboutTransfer(ctx, account, message)
}

func orderForLocking(a, b domain.Account) (domain.Account, domain.Account) {
	if b.Less(a) {
		return b, a
	}
	return a, b
}
