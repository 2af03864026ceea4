package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/allocation"
	"github.com/dulcehorno/panaderia-api/internal/application/dto"
)

// AllocationHandler maneja el cálculo de asignación diaria de ingredientes (protegido).
type AllocationHandler struct {
	uc *allocation.UseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *allocation.UseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

// Calculate godoc
// @Summary      Calcular asignación de ingredientes de una fecha
// @Tags         allocation
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.AllocationResponse
// @Router       /api/allocation/{date} [get]
func (h *AllocationHandler) Calculate(c *fiber.Ctx) error {
	date := c.Params("date")
	out, err := h.uc.Calculate(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar PDF de la asignación de una fecha
// @Tags         allocation
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {file}  binary
// @Router       /api/allocation/{date}/pdf [get]
func (h *AllocationHandler) ExportPDF(c *fiber.Ctx) error {
	date := c.Params("date")
	data, err := h.uc.ExportPDF(date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="asignacion-`+date+`.pdf"`)
	return c.Send(data)
}
