// Package memory implements the repository interfaces in process. It backs the
// "memory" storage driver and the service tests.
package memory

import (
	"context"
	"sync"

	"github.com/Domenick1991/flightinventory/internal/repository"
)

type journalKey struct{}

// journal collects undo steps for the mutations made inside one WithTx call.
type journal struct {
	mu    sync.Mutex
	undos []func()
}

func (j *journal) add(undo func()) {
	j.mu.Lock()
	j.undos = append(j.undos, undo)
	j.mu.Unlock()
}

func (j *journal) rollback() {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i := len(j.undos) - 1; i >= 0; i-- {
		j.undos[i]()
	}
	j.undos = nil
}

// recordUndo registers undo with the journal bound to ctx, if any.
func recordUndo(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.add(undo)
	}
}

// Transactor gives in-memory repositories all-or-nothing semantics by replaying
// compensations when fn fails.
type Transactor struct{}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		j.rollback()
		return err
	}
	return nil
}

var _ repository.Transactor = (*Transactor)(nil)
