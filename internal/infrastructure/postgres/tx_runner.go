package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ stock.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
	ins  *ResilientInserter
}

// NewTxRunner construye el runner con el pool y el helper de inserts de cabecera.
func NewTxRunner(pool *pgxpool.Pool, ins *ResilientInserter) *TxRunner {
	return &TxRunner{pool: pool, ins: ins}
}

// Run inicia una transacción, ejecuta fn con el repo atado a la tx y hace Commit o Rollback.
// Cabecera y líneas quedan juntas: si fallan las líneas no queda cabecera huérfana.
func (r *TxRunner) Run(ctx context.Context, fn func(repo repository.StockMovementRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classifyError(err, ""))
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockRepository(tx, r.ins)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", classifyError(err, ""))
	}
	return nil
}
