package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// StockMovementRepository persiste cabecera + líneas de entradas y traslados.
// Se usa dentro de un TxRunner; asigna el ID de la cabecera y devuelve las columnas
// opcionales que la tabla remota no aceptó.
type StockMovementRepository interface {
	CreateStockIn(ctx context.Context, in *entity.StockIn) (dropped []string, err error)
	CreateStockTransfer(ctx context.Context, t *entity.StockTransfer) (dropped []string, err error)
}

// StockBalanceRepository lee la vista de saldos por ingrediente y sucursal,
// ordenada por stock actual ascendente.
type StockBalanceRepository interface {
	ListBalances(ctx context.Context) ([]entity.StockBalance, error)
}
