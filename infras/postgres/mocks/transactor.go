package mocks

import (
	"context"
	"sync"

	"careerday/infras/postgres"

	"github.com/jmoiron/sqlx"
)

// Transactor runs every transaction body under one process wide mutex, which gives
// in-memory repositories the same serial view a SERIALIZABLE database would.
type Transactor struct {
	mu    sync.Mutex
	Runs  int
	Locks []string
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

// WithTransaction implements postgres.Transactor.
func (t *Transactor) WithTransaction(ctx context.Context, fn postgres.TxFunc) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.Runs++

	return fn(ctx, nil)
}

// Lock implements postgres.Transactor.
func (t *Transactor) Lock(_ context.Context, _ *sqlx.Tx, key string) error {
	t.Locks = append(t.Locks, key)

	return nil
}
