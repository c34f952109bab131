package entity

import "github.com/shopspring/decimal"

// Ingredient materia prima que entra y se traslada entre sucursales.
// LowStockThreshold nil = sin alerta de stock bajo.
type Ingredient struct {
	ID                string
	Name              string
	Unit              string
	LowStockThreshold *decimal.Decimal
}

// Branch sucursal del restaurante.
type Branch struct {
	ID   string
	Name string
}

// Supplier proveedor de ingredientes.
type Supplier struct {
	ID   string
	Name string
}

// MenuItem plato o producto vendido en caja.
type MenuItem struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
