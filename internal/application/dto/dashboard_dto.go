package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Cada sección falla por separado: si una consulta falla queda su *Error y el resto se muestra.
// Los *Error y *Label se guardan como claves de i18n y se traducen al responder.
type DashboardSummaryDTO struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalSalesLabel string          `json:"total_sales_label"` // ej: "$1,234.50"
	SalesError      string          `json:"sales_error,omitempty"`

	ProductMix      []ProductMixRowDTO `json:"product_mix"` // top 5 por ingreso
	ProductMixEmpty bool               `json:"product_mix_empty"`
	ProductMixLabel string             `json:"product_mix_label,omitempty"`
	ProductMixError string             `json:"product_mix_error,omitempty"`

	LowStock      []LowStockAlertDTO `json:"low_stock"`
	LowStockLabel string             `json:"low_stock_label,omitempty"`
	LowStockError string             `json:"low_stock_error,omitempty"`

	BranchSales      []BranchSalesDTO `json:"branch_sales"`
	BranchSalesError string           `json:"branch_sales_error,omitempty"`

	GeneratedAt string `json:"generated_at"`
}

// LowStockAlertDTO ingrediente en o bajo su umbral en una sucursal.
type LowStockAlertDTO struct {
	IngredientID      string          `json:"ingredient_id"`
	IngredientName    string          `json:"ingredient_name"`
	BranchID          string          `json:"branch_id"`
	BranchName        string          `json:"branch_name"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
}

// BranchSalesDTO total vendido por sucursal.
type BranchSalesDTO struct {
	BranchID   string          `json:"branch_id"`
	BranchName string          `json:"branch_name"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
}
