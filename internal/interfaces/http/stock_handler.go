package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/application/stock"
	"github.com/jhoicas/backoffice-api/pkg/i18n"
)

// StockHandler maneja entradas de stock, traslados y alta de proveedores (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// RecordStockIn godoc
// @Summary      Registrar entrada de stock
// @Description  Cabecera stock_in más una línea stock_in_item por ingrediente, en una transacción.
// @Description  Las columnas opcionales que la tabla no tenga se omiten y se listan en dropped_columns.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "supplier_id, branch_id, items"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockHandler) RecordStockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordStockIn(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, opStockIn)
	}
	out.Message = i18n.T(Lang(c), i18n.StockInSaved)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RecordTransfer godoc
// @Summary      Registrar traslado entre sucursales
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockTransferRequest  true  "from_branch_id, to_branch_id, items"
// @Success      201   {object}  dto.StockMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock-transfers [post]
func (h *StockHandler) RecordTransfer(c *fiber.Ctx) error {
	var in dto.StockTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.RecordTransfer(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err, opTransfer)
	}
	out.Message = i18n.T(Lang(c), i18n.TransferSaved)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateSupplier godoc
// @Summary      Alta de proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplierRequest  true  "name"
// @Success      201   {object}  dto.SupplierResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *StockHandler) CreateSupplier(c *fiber.Ctx) error {
	var in dto.CreateSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateSupplier(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, opSupplier)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
