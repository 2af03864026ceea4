package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dulcehorno/panaderia-api/internal/application/allocation"
	"github.com/dulcehorno/panaderia-api/internal/application/auth"
	"github.com/dulcehorno/panaderia-api/internal/application/reports"
	"github.com/dulcehorno/panaderia-api/internal/application/sales"
	"github.com/dulcehorno/panaderia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	RecipeUC     *usecase.RecipeUseCase
	InventoryUC  *usecase.InventoryUseCase
	ProductionUC *usecase.ProductionUseCase
	StatisticsUC *usecase.StatisticsUseCase
	AllocationUC *allocation.UseCase
	ReportsUC    *reports.UseCase
	POSUC        *sales.POSUseCase
	OrderBuilder *sales.OrderBuilder
	SettleUC     *sales.SettleUseCase
	SubOrderUC   *sales.SubOrderUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Recetas (protegido)
	recipes := protected.Group("/recipes")
	recipeHandler := NewRecipeHandler(deps.RecipeUC, deps.ReportsUC)
	recipes.Post("/", recipeHandler.Create)
	recipes.Get("/", recipeHandler.List)
	recipes.Get("/:name", recipeHandler.GetByName)
	recipes.Put("/:name", recipeHandler.Update)
	recipes.Delete("/:name", recipeHandler.Delete)
	recipes.Get("/:name/scale", recipeHandler.Scale)
	recipes.Get("/:name/pdf", recipeHandler.ExportPDF)

	// Inventario (protegido). "/pdf" antes que "/:name".
	inv := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC, deps.ReportsUC)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/pdf", inventoryHandler.ExportPDF)
	inv.Post("/:name/restock", inventoryHandler.Restock)
	inv.Put("/:name/amount", inventoryHandler.Correct)
	inv.Delete("/:name", inventoryHandler.Delete)

	// Plan de producción (protegido). "/pdf" antes que "/:date".
	production := protected.Group("/production")
	productionHandler := NewProductionHandler(deps.ProductionUC, deps.ReportsUC)
	production.Get("/", productionHandler.History)
	production.Get("/pdf", productionHandler.ExportPDF)
	production.Put("/:date", productionHandler.Save)
	production.Get("/:date", productionHandler.GetByDate)

	// Asignación de ingredientes (protegido)
	alloc := protected.Group("/allocation")
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	alloc.Get("/:date", allocationHandler.Calculate)
	alloc.Get("/:date/pdf", allocationHandler.ExportPDF)

	// Punto de venta (protegido)
	pos := protected.Group("/pos")
	posHandler := NewPOSHandler(deps.POSUC, deps.OrderBuilder, deps.SettleUC)
	pos.Post("/prices", posHandler.CreatePrice)
	pos.Get("/items", posHandler.ListItems)
	pos.Get("/bills", posHandler.ListBills)
	pos.Post("/registers/:register/lines", posHandler.AddLine)
	pos.Get("/registers/:register", posHandler.OrderState)
	pos.Delete("/registers/:register", posHandler.ClearOrder)
	pos.Post("/registers/:register/settle", posHandler.Settle)

	// Pedidos anticipados (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.SubOrderUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Delete("/", orderHandler.Delete)

	// Estadísticas (protegido)
	stats := protected.Group("/statistics")
	statisticsHandler := NewStatisticsHandler(deps.StatisticsUC)
	stats.Get("/", statisticsHandler.Summary)
	stats.Get("/charts", statisticsHandler.ExportCharts)

	// Analítica de ventas (protegido): mismas facturas agregadas que /pos/bills.
	analytics := protected.Group("/analytics")
	analytics.Get("/bills", posHandler.ListBills)
}
