package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultNote nota que acompaña a las cabeceras creadas desde el back-office.
const DefaultNote = "Created from backoffice UI"

// StockLine línea de ingrediente dentro de una entrada o un traslado.
type StockLine struct {
	IngredientID string
	Quantity     decimal.Decimal // siempre > 0
	Unit         string
}

// StockIn cabecera de entrada de stock (recepción de un proveedor en una sucursal).
type StockIn struct {
	ID         string
	SupplierID string
	BranchID   string
	Note       string
	CreatedAt  time.Time
	CreatedBy  string
	Items      []StockLine
}

// StockTransfer cabecera de traslado entre sucursales.
type StockTransfer struct {
	ID           string
	FromBranchID string
	ToBranchID   string
	Note         string
	CreatedAt    time.Time
	CreatedBy    string
	Items        []StockLine
}
