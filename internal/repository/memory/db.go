package memory

import (
	"context"
	"fmt"

	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// DB holds the entity stores for the lifetime of the process.
type DB struct {
	sem   *semaphore.Weighted
	state *state
}

// NewDB creates an empty store set.
func NewDB() *DB {
	return &DB{
		// One holder at a time: transactions are serialized.
		sem:   semaphore.NewWeighted(1),
		state: &state{},
	}
}

// WithTx executes fn against a working copy and publishes it on success.
func (db *DB) WithTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire store: %w", err)
	}
	defer db.sem.Release(1)

	work := db.state.clone()
	if err := fn(&tx{s: work}); err != nil {
		log.Debug().Err(err).Msg("store: transaction rolled back")
		return err
	}

	db.state = work
	return nil
}

// View executes fn against the published stores.
func (db *DB) View(ctx context.Context, fn func(tx repository.Tx) error) error {
	if err := db.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("could not acquire store: %w", err)
	}
	defer db.sem.Release(1)

	return fn(&tx{s: db.state, readOnly: true})
}

var _ repository.Store = (*DB)(nil)
