package domain_test

import (
	"testing"

	"github.com/ivannazarenko1997/TransferMoneyApi/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccountSortKeyIsDeterministic(t *testing.T) {
	a := domain.NewAccount("acc-1", decimal.Zero)
	b := domain.NewAccount("acc-1", decimal.NewFromInt(500))

	assert.Equal(t, a.SortKey(), b.SortKey())
	assert.Equal(t, a.SortKey(), domain.NewAccount("acc-1", decimal.Zero).SortKey())
}

func TestAccountSortKeyWithoutConstructor(t *testing.T) {
	constructed := domain.NewAccount("acc-1", decimal.Zero)
	literal := domain.Account{ID: "acc-1"}

	assert.Equal(t, constructed.SortKey(), literal.SortKey())
}

func TestAccountLessIsStrictTotalOrder(t *testing.T) {
	ids := []string{"acc-1", "acc-2", "acc-3", "Id-123", "Id-456", "x"}

	for _, idA := range ids {
		a := domain.NewAccount(idA, decimal.Zero)
		assert.False(t, a.Less(a), "account must not order before itself")

		for _, idB := range ids {
			if idA == idB {
				continue
			}
			b := domain.NewAccount(idB, decimal.Zero)
			assert.NotEqual(t, a.Less(b), b.Less(a),
				"exactly one of %q and %q must order first", idA, idB)
		}
	}
}
