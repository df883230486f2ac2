package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcastro/almacen-api/internal/application/report"
)

// ReportHandler exportaciones del almacén (requiere capacidad view-reports).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// ProductsCSV godoc
// @Summary      Exportar catálogo en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/products.csv [get]
func (h *ReportHandler) ProductsCSV(c *fiber.Ctx) error {
	out, err := h.uc.ProductsCSV(GetIdentity(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="productos.csv"`)
	return c.Send(out)
}

// MovementsCSV godoc
// @Summary      Exportar movimientos en CSV
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.csv [get]
func (h *ReportHandler) MovementsCSV(c *fiber.Ctx) error {
	out, err := h.uc.MovementsCSV(GetIdentity(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.csv"`)
	return c.Send(out)
}

// MovementsXML godoc
// @Summary      Exportar movimientos en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Success      200  {string}  string
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/movements.xml [get]
func (h *ReportHandler) MovementsXML(c *fiber.Ctx) error {
	out, err := h.uc.MovementsXML(GetIdentity(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xml"`)
	return c.Send(out)
}

// StockPDF godoc
// @Summary      Reporte de stock en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  binary
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/reports/stock.pdf [get]
func (h *ReportHandler) StockPDF(c *fiber.Ctx) error {
	out, err := h.uc.StockPDF(c.Context(), GetIdentity(c))
	if err != nil {
		return errorJSON(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stock.pdf"`)
	return c.Send(out)
}
