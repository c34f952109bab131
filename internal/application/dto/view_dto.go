package dto

// OptionDTO opción de un selector; Value vacío es el placeholder.
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ItemRowDTO fila de ingrediente pre-cargada en un formulario.
type ItemRowDTO struct {
	IngredientID string `json:"ingredient_id"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
}

// ViewDTO modelo de una página del back-office (GET /api/views/:id).
// Solo se rellenan los selectores que la página usa.
type ViewDTO struct {
	ID          string      `json:"id"`
	Suppliers   []OptionDTO `json:"suppliers,omitempty"`
	Branches    []OptionDTO `json:"branches,omitempty"`
	FromBranch  []OptionDTO `json:"from_branches,omitempty"`
	ToBranch    []OptionDTO `json:"to_branches,omitempty"`
	Ingredients []OptionDTO `json:"ingredients,omitempty"`
	DefaultItem *ItemRowDTO `json:"default_item,omitempty"`

	Dashboard *DashboardSummaryDTO `json:"dashboard,omitempty"`
	Report    *ProductMixResponse  `json:"report,omitempty"`
}
