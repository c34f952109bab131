package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/application/analytics"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
)

// ReportHandler reporte de product mix en JSON, PDF y XLSX.
type ReportHandler struct {
	uc   *analytics.ReportUseCase
	pdf  analytics.ReportExporter
	xlsx analytics.ReportExporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, pdf, xlsx analytics.ReportExporter) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, xlsx: xlsx}
}

// GetProductMix godoc
// @Summary      Product mix por rango de fechas
// @Description  Cantidad e ingreso por ítem del menú, ordenado por ingreso descendente.
// @Description  from/to en YYYY-MM-DD (from desde 00:00:00, to hasta 23:59:59 UTC).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "filtro por nombre"
// @Success      200  {object}  dto.ProductMixResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/product-mix [get]
func (h *ReportHandler) GetProductMix(c *fiber.Ctx) error {
	var q dto.ProductMixRequest
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.GetProductMix(c.UserContext(), q)
	if err != nil {
		return writeError(c, err, opReport)
	}
	return c.JSON(localizeReport(Lang(c), out))
}

// ExportPDF godoc
// @Summary      Product mix en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "filtro por nombre"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/product-mix.pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	return h.export(c, h.pdf)
}

// ExportXLSX godoc
// @Summary      Product mix en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from    query  string  false  "YYYY-MM-DD"
// @Param        to      query  string  false  "YYYY-MM-DD"
// @Param        search  query  string  false  "filtro por nombre"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/product-mix.xlsx [get]
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	return h.export(c, h.xlsx)
}

func (h *ReportHandler) export(c *fiber.Ctx, exp analytics.ReportExporter) error {
	var q dto.ProductMixRequest
	if err := c.QueryParser(&q); err != nil {
		return invalidBody(c)
	}
	data, filename, err := h.uc.Export(c.UserContext(), q, Lang(c), exp)
	if err != nil {
		return writeError(c, err, opReport)
	}
	c.Set(fiber.HeaderContentType, exp.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
