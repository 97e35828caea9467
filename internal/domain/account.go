package domain

import (
	"hash/fnv"

	"github.com/shopspring/decimal"
)

// Account is the ledger's unit of state. Balance is mutated only through the
// account service while the account's lock is held.
type Account struct {
	ID      string
	Balance decimal.Decimal

	sortKey uint64
}

func NewAccount(id string, balance decimal.Decimal) Account {
	return Account{
		ID:      id,
		Balance: balance,
		sortKey: orderingKey(id),
	}
}

// SortKey returns the account's lock-ordering key. The key is derived from the
// identifier only, so every copy of the same account carries the same key.
func (a Account) SortKey() uint64 {
	if a.sortKey != 0 {
		return a.sortKey
	}
	return orderingKey(a.ID)
}

// Less imposes the global lock order: ordering key first, identifier as the
// tie-break. Two accounts with distinct IDs never compare equal.
func (a Account) Less(other Account) bool {
	ak, bk := a.SortKey(), other.SortKey()
	if ak != bk {
		return ak < bk
	}
	return a.ID < other.ID
}

func orderingKey(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}
