package dto

import "github.com/shopspring/decimal"

type IngredientResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Unit              string           `json:"unit"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
}

type BranchResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type SupplierResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MenuItemResponse struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ReferencesResponse respuesta de GET /api/references.
type ReferencesResponse struct {
	Ingredients []IngredientResponse `json:"ingredients"`
	Branches    []BranchResponse     `json:"branches"`
	Suppliers   []SupplierResponse   `json:"suppliers"`
	Menus       []MenuItemResponse   `json:"menus"`
}
