package stock

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de movimientos atado a ella.
// Cabecera y líneas se confirman juntas o no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.StockMovementRepository) error) error
}

// DashboardRefresher recalcula la instantánea del dashboard tras una escritura.
type DashboardRefresher interface {
	Refresh(ctx context.Context) error
}

// ReferenceStore la parte de la caché de referencia que usan las escrituras.
type ReferenceStore interface {
	HasIngredient(id string) bool
	AddSupplier(s entity.Supplier)
}
