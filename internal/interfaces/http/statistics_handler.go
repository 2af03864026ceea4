package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
)

// StatisticsHandler maneja el tablero de estadísticas (protegido).
type StatisticsHandler struct {
	uc *usecase.StatisticsUseCase
}

// NewStatisticsHandler construye el handler.
func NewStatisticsHandler(uc *usecase.StatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{uc: uc}
}

// Summary godoc
// @Summary      Datos crudos del tablero: inventario + series de producción
// @Tags         statistics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatisticsSummaryResponse
// @Router       /api/statistics [get]
func (h *StatisticsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportCharts godoc
// @Summary      Descargar el tablero renderizado como PNG
// @Tags         statistics
// @Security     Bearer
// @Produce      image/png
// @Success      200  {file}  binary
// @Router       /api/statistics/charts [get]
func (h *StatisticsHandler) ExportCharts(c *fiber.Ctx) error {
	data, err := h.uc.ExportCharts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="estadisticas.png"`)
	return c.Send(data)
}
