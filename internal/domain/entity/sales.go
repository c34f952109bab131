package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleLine línea de recibo (receipt_items) con la fecha del recibo padre.
// ReceiptCreatedAt es nil cuando el recibo no tiene fecha o no se pudo unir.
type SaleLine struct {
	MenuID           string
	Quantity         decimal.Decimal
	UnitPrice        decimal.Decimal
	ReceiptCreatedAt *time.Time
}

// BranchSales total vendido por sucursal.
type BranchSales struct {
	BranchID string
	Total    decimal.Decimal
}

// StockBalance fila de la vista ingredients_stock_balance.
type StockBalance struct {
	IngredientID      string
	IngredientName    string
	BranchID          string
	BranchName        string
	CurrentStock      decimal.Decimal
	LowStockThreshold *decimal.Decimal
}

// IsLow indica si el saldo está en o por debajo del umbral configurado.
func (b StockBalance) IsLow() bool {
	return b.LowStockThreshold != nil && b.CurrentStock.LessThanOrEqual(*b.LowStockThreshold)
}
