package memory

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta fn directamente sobre el store; no hay rollback en memoria.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner en memoria.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{store: s}
}

// Run ejecuta fn sobre el store.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.StockMovementRepository) error) error {
	return fn(r.store)
}
