package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve ventas totales, top 5 de productos, alertas de stock bajo y ventas por sucursal.
// GET /api/dashboard/summary
//
// Cada sección falla por separado (campo *_error); las demás se muestran igual.
// Sin parámetros. Se sirve de la instantánea en caché si existe.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(localizeSummary(Lang(c), summary))
}

// Refresh recalcula la instantánea del dashboard.
// POST /api/dashboard/refresh
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	if err := h.uc.Refresh(c.UserContext()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}
	return c.JSON(dto.MessageResponse{Message: i18n.T(Lang(c), i18n.DashboardRefreshed)})
}
