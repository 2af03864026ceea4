package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/dto"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/domain"
)

// POSHandler maneja el punto de venta: precios, artículos, pedido en curso
// por caja y liquidación (protegido).
type POSHandler struct {
	posUC    *sales.POSUseCase
	builder  *sales.OrderBuilder
	settleUC *sales.SettleUseCase
}

// NewPOSHandler construye el handler.
func NewPOSHandler(posUC *sales.POSUseCase, builder *sales.OrderBuilder, settleUC *sales.SettleUseCase) *POSHandler {
	return &POSHandler{posUC: posUC, builder: builder, settleUC: settleUC}
}

// CreatePrice godoc
// @Summary      Fijar precio de venta de una receta (inmutable)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePriceRequest  true  "Receta y precio"
// @Success      201   {object}  dto.PriceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/prices [post]
func (h *POSHandler) CreatePrice(c *fiber.Ctx) error {
	var in dto.CreatePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.posUC.CreatePrice(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recipe_name es requerido y price debe ser mayor que cero"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "receta no encontrada"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la receta ya tiene precio; el precio es inmutable"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListItems godoc
// @Summary      Listar artículos vendibles (precio + stock disponible)
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.POSItemListResponse
// @Router       /api/pos/items [get]
func (h *POSHandler) ListItems(c *fiber.Ctx) error {
	out, err := h.posUC.ListItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// AddLine godoc
// @Summary      Agregar línea al pedido en curso de la caja (reserva local, no persiste)
// @Tags         pos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        register  path  string  true  "Identificador de la caja"
// @Param        body      body  dto.AddLineRequest  true  "Receta y cantidad"
// @Success      200   {object}  dto.OrderStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/pos/registers/{register}/lines [post]
func (h *POSHandler) AddLine(c *fiber.Ctx) error {
	register := c.Params("register")
	if register == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REGISTER", Message: "register es requerido"})
	}
	var in dto.AddLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.builder.AddLine(register, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "recipe_name es requerido y quantity debe ser mayor que cero"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la receta no tiene precio de venta"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para la cantidad pedida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// OrderState godoc
// @Summary      Estado del pedido en curso de la caja
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        register  path  string  true  "Identificador de la caja"
// @Success      200  {object}  dto.OrderStateResponse
// @Router       /api/pos/registers/{register} [get]
func (h *POSHandler) OrderState(c *fiber.Ctx) error {
	register := c.Params("register")
	if register == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REGISTER", Message: "register es requerido"})
	}
	return c.JSON(h.builder.State(register))
}

// ClearOrder godoc
// @Summary      Vaciar el pedido en curso de la caja (libera reservas)
// @Tags         pos
// @Security     Bearer
// @Param        register  path  string  true  "Identificador de la caja"
// @Success      204
// @Router       /api/pos/registers/{register} [delete]
func (h *POSHandler) ClearOrder(c *fiber.Ctx) error {
	register := c.Params("register")
	if register == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REGISTER", Message: "register es requerido"})
	}
	h.builder.Clear(register)
	return c.SendStatus(fiber.StatusNoContent)
}

// Settle godoc
// @Summary      Liquidar el pedido en curso: factura y decrementa stock en una transacción
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Param        register  path  string  true  "Identificador de la caja"
// @Success      201  {object}  dto.BillResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/pos/registers/{register}/settle [post]
func (h *POSHandler) Settle(c *fiber.Ctx) error {
	register := c.Params("register")
	if register == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_REGISTER", Message: "register es requerido"})
	}
	out, err := h.settleUC.Settle(c.UserContext(), register)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "EMPTY_ORDER", Message: "el pedido en curso está vacío"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente al liquidar; el pedido se conserva"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListBills godoc
// @Summary      Listar facturas históricas con total agregado
// @Tags         pos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BillListResponse
// @Router       /api/pos/bills [get]
func (h *POSHandler) ListBills(c *fiber.Ctx) error {
	out, err := h.posUC.ListBills()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
