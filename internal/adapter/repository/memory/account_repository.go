package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
)

const initialCapacity = 32

// AccountRepository is the in-memory account registry. Critical sections are
// map operations only; no caller-supplied work runs under the mutex.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]domain.Account, initialCapacity),
	}
}

// Create inserts the account only if its id is absent. The check and the
// insert happen under one lock, so concurrent creators racing on the same id
// see exactly one winner.
func (r *AccountRepository) Create(_ context.Context, account domain.Account) error {
	if strings.TrimSpace(account.ID) == "" {
		return domain.ErrAccountNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; exists {
		return domain.ErrDuplicateAccount
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *AccountRepository) Get(_ context.Context, id string) (domain.Account, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[id]
	return account, ok, nil
}

// Update replaces the stored state for an existing id.
func (r *AccountRepository) Update(_ context.Context, account domain.Account) error {
	if strings.TrimSpace(account.ID) == "" {
		return domain.ErrAccountNotFound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[account.ID]; !exists {
		return domain.ErrAccountNotFound
	}
	r.accounts[account.ID] = account
	return nil
}

// GetAll returns a point-in-time copy; later mutations are not reflected in
// the returned slice.
func (r *AccountRepository) GetAll(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		accounts = append(accounts, account)
	}
	return accounts, nil
}

// Clear removes all accounts. Test isolation utility.
func (r *AccountRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[string]domain.Account, initialCapacity)
	return nil
}
