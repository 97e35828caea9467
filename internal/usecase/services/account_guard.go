package services

import "sync"

// AccountGuard hands out one mutex per account id. The ledger's mutual
// exclusion rule: a balance may only be mutated by the operation currently
// holding that account's mutex. Single-account operations take one; transfers
// take both, always in SortKey order.
type AccountGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewAccountGuard() *AccountGuard {
	return &AccountGuard{locks: make(map[string]*sync.Mutex)}
}

// Mutex returns the lock for the given account id, creating it on first use.
// The same id always maps to the same mutex for the life of the guard.
func (g *AccountGuard) Mutex(id string) *sync.Mutex {
	g.mu.Lock()
	defer g.mu.Unlock()

	m, ok := g.locks[id]
	if !ok {
		m = &sync.Mutex{}
		g.locks[id] = m
	}
	return m
}
