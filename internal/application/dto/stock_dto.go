package dto

import "github.com/shopspring/decimal"

// StockItemRequest línea de ingrediente en POST /api/stock-in y /api/stock-transfers.
type StockItemRequest struct {
	IngredientID string          `json:"ingredient_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
}

// StockInRequest body para POST /api/stock-in.
type StockInRequest struct {
	SupplierID string             `json:"supplier_id"`
	BranchID   string             `json:"branch_id"`
	Items      []StockItemRequest `json:"items"`
}

// StockTransferRequest body para POST /api/stock-transfers.
type StockTransferRequest struct {
	FromBranchID string             `json:"from_branch_id"`
	ToBranchID   string             `json:"to_branch_id"`
	Items        []StockItemRequest `json:"items"`
}

// StockMovementResponse resultado de una entrada o traslado.
// DroppedColumns lista las columnas opcionales que la tabla remota no aceptó.
type StockMovementResponse struct {
	ID             string   `json:"id"`
	Message        string   `json:"message"`
	DroppedColumns []string `json:"dropped_columns,omitempty"`
}

// CreateSupplierRequest body para POST /api/suppliers.
type CreateSupplierRequest struct {
	Name string `json:"name"`
}
