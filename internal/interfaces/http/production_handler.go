package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/reports"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
	"github.com/dulcehorno/panaderia-api/internal/domain"
)

// ProductionHandler maneja las peticiones HTTP del plan de producción (protegido).
type ProductionHandler struct {
	uc      *usecase.ProductionUseCase
	reports *reports.UseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(uc *usecase.ProductionUseCase, reports *reports.UseCase) *ProductionHandler {
	return &ProductionHandler{uc: uc, reports: reports}
}

// Save godoc
// @Summary      Guardar plan del día (reemplaza las líneas de la fecha)
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Param        body  body  dto.SavePlanRequest  true  "Líneas del plan"
// @Success      200   {object}  dto.PlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/{date} [put]
func (h *ProductionHandler) Save(c *fiber.Ctx) error {
	date := c.Params("date")
	var in dto.SavePlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Save(date, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha o líneas del plan inválidas"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "alguna receta del plan no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByDate godoc
// @Summary      Obtener plan de una fecha
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.PlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/production/{date} [get]
func (h *ProductionHandler) GetByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	out, err := h.uc.GetByDate(date)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha inválida, formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "sin plan para la fecha"})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial completo de producción
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PlanHistoryResponse
// @Router       /api/production [get]
func (h *ProductionHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar PDF del historial de producción
// @Tags         production
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/production/pdf [get]
func (h *ProductionHandler) ExportPDF(c *fiber.Ctx) error {
	data, err := h.reports.ProductionHistoryPDF()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="produccion.pdf"`)
	return c.Send(data)
}
