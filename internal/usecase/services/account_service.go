package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/repository/repo_interfaces"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/logger"
	"github.com/shopspring/decimal"
)

// AccountService exposes atomic single-account operations on top of the
// account repository. Credit and Debit serialize on the account's guard
// mutex, so they also serialize against transfers touching the same account.
type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
	guard       *AccountGuard
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, guard *AccountGuard) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		guard:       guard,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, account domain.Account) error {
	logger.Info("account service create account request", logger.Fields{
		"accountId": account.ID,
		"balance":   account.Balance.String(),
	})

	if account.Balance.IsNegative() {
		return domain.ErrInvalidAmount
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		logger.Error("account service create account failed", err, logger.Fields{
			"accountId": account.ID,
		})
		if errors.Is(err, domain.ErrDuplicateAccount) || errors.Is(err, domain.ErrAccountNotFound) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	return nil
}

func (s *AccountService) FindByID(ctx context.Context, id string) (domain.Account, error) {
	account, ok, err := s.accountRepo.Get(ctx, id)
	if err != nil {
		logger.Error("account service find account failed", err, logger.Fields{
			"accountId": id,
		})
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) GetAll(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.GetAll(ctx)
	if err != nil {
		logger.Error("account service list accounts failed", err, nil)
		return nil, fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	return accounts, nil
}

func (s *AccountService) Clear(ctx context.Context) error {
	logger.Info("account service clear accounts", nil)
	if err := s.accountRepo.Clear(ctx); err != nil {
		logger.Error("account service clear accounts failed", err, nil)
		return fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	return nil
}

// Credit adds amount to the account's balance under its exclusive lock.
func (s *AccountService) Credit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	logger.Info("account service credit request", logger.Fields{
		"accountId": id,
		"amount":    amount.String(),
	})

	if amount.IsNegative() {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	mu := s.guard.Mutex(id)
	mu.Lock()
	defer mu.Unlock()

	return s.creditLocked(ctx, id, amount)
}

// Debit subtracts amount from the account's balance under its exclusive lock.
// A debit exceeding the balance fails without mutating anything.
func (s *AccountService) Debit(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	logger.Info("account service debit request", logger.Fields{
		"accountId": id,
		"amount":    amount.String(),
	})

	if amount.IsNegative() {
		return domain.Account{}, domain.ErrInvalidAmount
	}

	mu := s.guard.Mutex(id)
	mu.Lock()
	defer mu.Unlock()

	return s.debitLocked(ctx, id, amount)
}

// creditLocked requires the caller to hold the account's guard mutex. It
// performs one load and, on success, exactly one store.
func (s *AccountService) creditLocked(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	account, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	account.Balance = account.Balance.Add(amount)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		logger.Error("account service credit update failed", err, logger.Fields{
			"accountId": id,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, err
		}
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	return account, nil
}

// debitLocked requires the caller to hold the account's guard mutex.
func (s *AccountService) debitLocked(ctx context.Context, id string, amount decimal.Decimal) (domain.Account, error) {
	account, err := s.FindByID(ctx, id)
	if err != nil {
		return domain.Account{}, err
	}

	if account.Balance.LessThan(amount) {
		return domain.Account{}, domain.ErrInsufficientFunds
	}

	account.Balance = account.Balance.Sub(amount)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		logger.Error("account service debit update failed", err, logger.Fields{
			"accountId": id,
		})
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, err
		}
		return domain.Account{}, fmt.Errorf("%w: %v", domain.ErrOperationFailed, err)
	}
	return account, nil
}
