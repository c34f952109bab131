package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/refdata"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// DashboardRefresher recalcula el resumen del dashboard.
type DashboardRefresher interface {
	Refresh(ctx context.Context) error
}

// ReferenceHandler expone la caché de referencia (ingredientes, sucursales, proveedores, menú).
type ReferenceHandler struct {
	store *refdata.Store
	dash  DashboardRefresher
	log   zerolog.Logger
}

// NewReferenceHandler construye el handler. dash puede ser nil.
func NewReferenceHandler(store *refdata.Store, dash DashboardRefresher, log zerolog.Logger) *ReferenceHandler {
	return &ReferenceHandler{store: store, dash: dash, log: log}
}

// List godoc
// @Summary      Listas de referencia
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReferencesResponse
// @Router       /api/references [get]
func (h *ReferenceHandler) List(c *fiber.Ctx) error {
	return c.JSON(dto.ReferencesResponse{
		Ingredients: ingredientDTOs(h.store.Ingredients()),
		Branches:    branchDTOs(h.store.Branches()),
		Suppliers:   supplierDTOs(h.store.Suppliers()),
		Menus:       menuDTOs(h.store.MenuItems()),
	})
}

// ListKind godoc
// @Summary      Una lista de referencia
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Param        kind  path  string  true  "ingredients | branches | suppliers | menus"
// @Success      200  {array}   object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/references/{kind} [get]
func (h *ReferenceHandler) ListKind(c *fiber.Ctx) error {
	switch c.Params("kind") {
	case "ingredients":
		return c.JSON(ingredientDTOs(h.store.Ingredients()))
	case "branches":
		return c.JSON(branchDTOs(h.store.Branches()))
	case "suppliers":
		return c.JSON(supplierDTOs(h.store.Suppliers()))
	case "menus":
		return c.JSON(menuDTOs(h.store.MenuItems()))
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista desconocida"})
}

// Refresh godoc
// @Summary      Recargar listas de referencia
// @Description  Vuelve a leer las cuatro listas y recalcula el dashboard.
// @Tags         references
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/references/refresh [post]
func (h *ReferenceHandler) Refresh(c *fiber.Ctx) error {
	ctx := c.UserContext()
	h.store.Refresh(ctx)
	if h.dash != nil {
		if err := h.dash.Refresh(ctx); err != nil {
			h.log.Warn().Err(err).Msg("refresco del dashboard tras recargar referencias")
		}
	}
	return c.JSON(dto.MessageResponse{Message: i18n.T(Lang(c), i18n.ReferencesRefreshed)})
}

func ingredientDTOs(list []entity.Ingredient) []dto.IngredientResponse {
	out := make([]dto.IngredientResponse, len(list))
	for i, v := range list {
		out[i] = dto.IngredientResponse{ID: v.ID, Name: v.Name, Unit: v.Unit, LowStockThreshold: v.LowStockThreshold}
	}
	return out
}

func branchDTOs(list []entity.Branch) []dto.BranchResponse {
	out := make([]dto.BranchResponse, len(list))
	for i, v := range list {
		out[i] = dto.BranchResponse{ID: v.ID, Name: v.Name}
	}
	return out
}

func supplierDTOs(list []entity.Supplier) []dto.SupplierResponse {
	out := make([]dto.SupplierResponse, len(list))
	for i, v := range list {
		out[i] = dto.SupplierResponse{ID: v.ID, Name: v.Name}
	}
	return out
}

func menuDTOs(list []entity.MenuItem) []dto.MenuItemResponse {
	out := make([]dto.MenuItemResponse, len(list))
	for i, v := range list {
		out[i] = dto.MenuItemResponse{ID: v.ID, Name: v.Name, Price: v.Price}
	}
	return out
}
