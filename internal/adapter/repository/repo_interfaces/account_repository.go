package repo_interfaces

import (
	"context"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
)

// AccountRepository is the account registry. Get reports absence through the
// bool, not the error; the error is reserved for storage-layer failures.
type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) error
	Get(ctx context.Context, id string) (domain.Account, bool, error)
	Update(ctx context.Context, account domain.Account) error
	GetAll(ctx context.Context) ([]domain.Account, error)
	Clear(ctx context.Context) error
}
