package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/views"
)

// ViewHandler sirve el modelo de cada página del back-office.
type ViewHandler struct {
	uc *views.UseCase
}

// NewViewHandler construye el handler.
func NewViewHandler(uc *views.UseCase) *ViewHandler {
	return &ViewHandler{uc: uc}
}

// Show godoc
// @Summary      Modelo de página
// @Description  Selectores con placeholder, opción "agregar proveedor" y fila inicial de ingrediente.
// @Tags         views
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "dashboard | stock-in | stock-transfer | reports | suppliers"
// @Success      200  {object}  dto.ViewDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/views/{id} [get]
func (h *ViewHandler) Show(c *fiber.Ctx) error {
	tag := Lang(c)
	v, err := h.uc.Show(c.UserContext(), c.Params("id"), tag)
	if err != nil {
		return writeError(c, err, opGeneric)
	}
	if v.Dashboard != nil {
		v.Dashboard = localizeSummary(tag, v.Dashboard)
	}
	if v.Report != nil {
		v.Report = localizeReport(tag, v.Report)
	}
	return c.JSON(v)
}
