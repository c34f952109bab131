package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// ReferenceRepository lecturas de datos de referencia (listas ordenadas por nombre)
// más el alta de proveedores desde el back-office.
type ReferenceRepository interface {
	ListIngredients(ctx context.Context) ([]entity.Ingredient, error)
	ListBranches(ctx context.Context) ([]entity.Branch, error)
	ListSuppliers(ctx context.Context) ([]entity.Supplier, error)
	ListMenuItems(ctx context.Context) ([]entity.MenuItem, error)
	CreateSupplier(ctx context.Context, name string) (*entity.Supplier, error)
}
