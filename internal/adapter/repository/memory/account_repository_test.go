package memory_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/adapter/repository/memory"
	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	err := repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(100)))
	require.NoError(t, err)

	account, ok, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "acc-1", account.ID)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
}

func TestGetAbsentAccount(t *testing.T) {
	repo := memory.NewAccountRepository()

	_, ok, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateDuplicateKeepsExistingBalance(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(100))))

	err := repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(999)))
	assert.ErrorIs(t, err, domain.ErrDuplicateAccount)

	account, ok, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
}

func TestCreateRejectsEmptyID(t *testing.T) {
	repo := memory.NewAccountRepository()

	err := repo.Create(context.Background(), domain.Account{ID: "  "})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUpdateExistingAccount(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(100))))

	updated := domain.NewAccount("acc-1", decimal.NewFromInt(250))
	require.NoError(t, repo.Update(ctx, updated))

	account, ok, err := repo.Get(ctx, "acc-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, account.Balance.Equal(decimal.NewFromInt(250)))
}

func TestUpdateAbsentAccount(t *testing.T) {
	repo := memory.NewAccountRepository()

	err := repo.Update(context.Background(), domain.NewAccount("missing", decimal.Zero))
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	err = repo.Update(context.Background(), domain.Account{})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestGetAllReturnsSnapshot(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(100))))
	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-2", decimal.NewFromInt(200))))

	snapshot, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	require.NoError(t, repo.Update(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(999))))
	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-3", decimal.Zero)))

	assert.Len(t, snapshot, 2)
	for _, account := range snapshot {
		if account.ID == "acc-1" {
			assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
		}
	}
}

func TestClear(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(100))))
	require.NoError(t, repo.Clear(ctx))

	accounts, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	// Clearing frees the id for re-creation.
	assert.NoError(t, repo.Create(ctx, domain.NewAccount("acc-1", decimal.Zero)))
}

func TestConcurrentCreateSameIDAdmitsOneWinner(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	const racers = 64
	var created atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(balance int64) {
			defer wg.Done()
			<-start
			if err := repo.Create(ctx, domain.NewAccount("acc-1", decimal.NewFromInt(balance))); err == nil {
				created.Add(1)
			}
		}(int64(i))
	}

	close(start)
	wg.Wait()

	assert.Equal(t, int64(1), created.Load())
}

func TestConcurrentCreateDistinctIDs(t *testing.T) {
	repo := memory.NewAccountRepository()
	ctx := context.Background()

	const racers = 64
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("acc-%d", n)
			assert.NoError(t, repo.Create(ctx, domain.NewAccount(id, decimal.Zero)))
		}(i)
	}
	wg.Wait()

	accounts, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, racers)
}
