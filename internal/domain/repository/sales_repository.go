package repository

import (
	"context"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesRepository consultas de solo lectura sobre receipts y receipt_items.
type SalesRepository interface {
	// ListSaleLines devuelve todas las líneas con la fecha del recibo padre, ordenadas por menu_id.
	// El filtrado por fechas se hace en memoria (ver report.Aggregate).
	ListSaleLines(ctx context.Context) ([]entity.SaleLine, error)
	// TotalSales suma receipts.total; cero si no hay recibos.
	TotalSales(ctx context.Context) (decimal.Decimal, error)
	SalesByBranch(ctx context.Context) ([]entity.BranchSales, error)
}
