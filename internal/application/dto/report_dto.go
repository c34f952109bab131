package dto

import "github.com/shopspring/decimal"

// ProductMixRequest query de GET /api/reports/product-mix.
type ProductMixRequest struct {
	From   string `query:"from"`   // YYYY-MM-DD
	To     string `query:"to"`     // YYYY-MM-DD
	Search string `query:"search"` // filtro por nombre
}

// ProductMixRowDTO fila del reporte por ítem del menú.
type ProductMixRowDTO struct {
	MenuID   string          `json:"menu_id"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// ProductMixResponse Rows ordenadas por ingreso descendente; NoData si no hubo ventas en el rango.
type ProductMixResponse struct {
	From         string             `json:"from,omitempty"`
	To           string             `json:"to,omitempty"`
	Rows         []ProductMixRowDTO `json:"rows"`
	Top          []ProductMixRowDTO `json:"top"`
	NoData       bool               `json:"no_data"`
	NoDataLabel  string             `json:"no_data_label,omitempty"`
	TotalRevenue decimal.Decimal    `json:"total_revenue"`
}
