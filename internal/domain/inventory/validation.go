// Package inventory contiene las reglas que se validan antes de tocar la base remota.
package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
)

// IngredientChecker indica si un ingrediente existe en la caché de referencia.
type IngredientChecker func(id string) bool

// ValidateStockInHeader exige proveedor y sucursal seleccionados.
func ValidateStockInHeader(supplierID, branchID string) error {
	if strings.TrimSpace(supplierID) == "" {
		return domain.Invalid("supplier_id", "requerido")
	}
	if strings.TrimSpace(branchID) == "" {
		return domain.Invalid("branch_id", "requerido")
	}
	return nil
}

// ValidateTransferBranches exige origen y destino distintos; iguales se rechaza incluso si ambos son "".
func ValidateTransferBranches(fromID, toID string) error {
	if fromID == toID {
		return domain.Invalid("to_branch_id", "origen y destino deben ser distintos")
	}
	if strings.TrimSpace(fromID) == "" {
		return domain.Invalid("from_branch_id", "requerido")
	}
	if strings.TrimSpace(toID) == "" {
		return domain.Invalid("to_branch_id", "requerido")
	}
	return nil
}

// ValidateItems comprueba cada línea: ingrediente seleccionado y conocido, cantidad > 0, unidad no vacía.
// Devuelve las líneas normalizadas (unidad recortada). Una lista vacía es inválida.
func ValidateItems(items []entity.StockLine, known IngredientChecker) ([]entity.StockLine, error) {
	if len(items) == 0 {
		return nil, domain.Invalid("items", "se requiere al menos una línea")
	}
	out := make([]entity.StockLine, 0, len(items))
	for i, it := range items {
		field := fmt.Sprintf("items[%d]", i)
		id := strings.TrimSpace(it.IngredientID)
		if id == "" {
			return nil, domain.Invalid(field+".ingredient_id", "requerido")
		}
		if known != nil && !known(id) {
			return nil, domain.Invalid(field+".ingredient_id", fmt.Sprintf("ingrediente desconocido %q", id))
		}
		if !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.Invalid(field+".quantity", "debe ser mayor que cero")
		}
		unit := strings.TrimSpace(it.Unit)
		if unit == "" {
			return nil, domain.Invalid(field+".unit", "requerido")
		}
		out = append(out, entity.StockLine{IngredientID: id, Quantity: it.Quantity, Unit: unit})
	}
	return out, nil
}
