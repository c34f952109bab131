package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo lecturas sobre receipts / receipt_items.
type SalesRepo struct {
	q Querier
}

// NewSalesRepository construye el adaptador de ventas.
func NewSalesRepository(q Querier) *SalesRepo {
	return &SalesRepo{q: q}
}

// ListSaleLines todas las líneas de recibo con la fecha del recibo padre (nil si no hay).
func (r *SalesRepo) ListSaleLines(ctx context.Context) ([]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT ri.menu_id::text, COALESCE(ri.quantity, 0), COALESCE(ri.unit_price, 0), r.created_at
		FROM receipt_items ri
		LEFT JOIN receipts r ON r.id = ri.receipt_id
		ORDER BY ri.menu_id ASC`)
	if err != nil {
		return nil, classifyError(err, "receipt_items")
	}
	defer rows.Close()

	var list []entity.SaleLine
	for rows.Next() {
		var (
			l  entity.SaleLine
			at *time.Time
		)
		if err := rows.Scan(&l.MenuID, &l.Quantity, &l.UnitPrice, &at); err != nil {
			return nil, fmt.Errorf("scan sale line: %w", err)
		}
		l.ReceiptCreatedAt = at
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "receipt_items")
	}
	return list, nil
}

// TotalSales suma de receipts.total.
func (r *SalesRepo) TotalSales(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total), 0) FROM receipts`).Scan(&total); err != nil {
		return decimal.Zero, classifyError(err, "receipts")
	}
	return total, nil
}

// SalesByBranch total vendido agrupado por sucursal.
func (r *SalesRepo) SalesByBranch(ctx context.Context) ([]entity.BranchSales, error) {
	rows, err := r.q.Query(ctx, `
		SELECT COALESCE(branch_id::text, ''), COALESCE(SUM(total), 0)
		FROM receipts
		GROUP BY branch_id
		ORDER BY 2 DESC`)
	if err != nil {
		return nil, classifyError(err, "receipts")
	}
	defer rows.Close()

	var list []entity.BranchSales
	for rows.Next() {
		var b entity.BranchSales
		if err := rows.Scan(&b.BranchID, &b.Total); err != nil {
			return nil, fmt.Errorf("scan branch sales: %w", err)
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyError(err, "receipts")
	}
	return list, nil
}
