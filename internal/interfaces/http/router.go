package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gmao-pro/internal/application/auth"
	"github.com/tu-usuario/gmao-pro/internal/application/dashboard"
	"github.com/tu-usuario/gmao-pro/internal/application/preventive"
	"github.com/tu-usuario/gmao-pro/internal/application/procurement"
	"github.com/tu-usuario/gmao-pro/internal/application/usecase"
	"github.com/tu-usuario/gmao-pro/internal/application/workorder"
	"github.com/tu-usuario/gmao-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	SectorUC    *usecase.SectorUseCase
	WorkerUC    *usecase.WorkerUseCase
	AssetUC     *usecase.AssetUseCase
	ToolUC      *usecase.ToolUseCase
	SparePartUC *usecase.SparePartUseCase
	SupplierUC  *usecase.SupplierUseCase
	PlanUC      *preventive.PlanUseCase
	SweepUC     *preventive.SweepUseCase
	WorkOrderUC *workorder.UseCase
	PurchaseUC  *procurement.UseCase
	DashboardUC *dashboard.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register-company", authHandler.RegisterCompany)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Company (protegido; sólo admin puede modificarla)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", RequireRole(entity.RoleAdmin), companyHandler.Update)

	// Sectors (protegido)
	sectors := protected.Group("/sectors")
	sectorHandler := NewSectorHandler(deps.SectorUC)
	sectors.Post("/", sectorHandler.Create)
	sectors.Get("/", sectorHandler.List)
	sectors.Put("/:id", sectorHandler.Update)
	sectors.Delete("/:id", sectorHandler.Delete)

	// Workers (protegido)
	workers := protected.Group("/workers")
	workerHandler := NewWorkerHandler(deps.WorkerUC)
	workers.Post("/", workerHandler.Create)
	workers.Get("/", workerHandler.List)
	workers.Put("/:id", workerHandler.Update)
	workers.Delete("/:id", workerHandler.Delete)

	// Assets (protegido)
	assets := protected.Group("/assets")
	assetHandler := NewAssetHandler(deps.AssetUC)
	assets.Post("/", assetHandler.Create)
	assets.Get("/", assetHandler.List)
	assets.Put("/:id", assetHandler.Update)
	assets.Delete("/:id", assetHandler.Delete)

	// Tools (protegido)
	tools := protected.Group("/tools")
	toolHandler := NewToolHandler(deps.ToolUC)
	tools.Post("/", toolHandler.Create)
	tools.Get("/", toolHandler.List)
	tools.Put("/:id", toolHandler.Update)
	tools.Delete("/:id", toolHandler.Delete)

	// Spare parts y categorías (protegido)
	sparePartHandler := NewSparePartHandler(deps.SparePartUC)
	categories := protected.Group("/spare-part-categories")
	categories.Post("/", sparePartHandler.CreateCategory)
	categories.Get("/", sparePartHandler.ListCategories)
	categories.Delete("/:id", sparePartHandler.DeleteCategory)
	spareParts := protected.Group("/spare-parts")
	spareParts.Post("/", sparePartHandler.CreatePart)
	spareParts.Get("/", sparePartHandler.ListParts)
	spareParts.Put("/:id", sparePartHandler.UpdatePart)
	spareParts.Delete("/:id", sparePartHandler.DeletePart)

	// Suppliers (protegido)
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Preventive plans + sweep (protegido)
	plans := protected.Group("/preventive-plans")
	preventiveHandler := NewPreventiveHandler(deps.PlanUC, deps.SweepUC)
	plans.Post("/", preventiveHandler.Create)
	plans.Get("/", preventiveHandler.List)
	// La ruta fija va antes que la paramétrica para que Fiber no la capture como :id.
	plans.Post("/sweep", preventiveHandler.Sweep)
	plans.Get("/:id", preventiveHandler.Get)
	plans.Put("/:id", preventiveHandler.Update)
	plans.Delete("/:id", preventiveHandler.Delete)

	// Work orders (protegido)
	workOrders := protected.Group("/work-orders")
	workOrderHandler := NewWorkOrderHandler(deps.WorkOrderUC)
	workOrders.Post("/", workOrderHandler.Create)
	workOrders.Get("/", workOrderHandler.List)
	workOrders.Get("/:id", workOrderHandler.Get)
	workOrders.Put("/:id", workOrderHandler.Update)

	// Purchase orders (protegido)
	purchaseOrders := protected.Group("/purchase-orders")
	purchaseOrderHandler := NewPurchaseOrderHandler(deps.PurchaseUC)
	purchaseOrders.Post("/", purchaseOrderHandler.Create)
	purchaseOrders.Get("/", purchaseOrderHandler.List)
	purchaseOrders.Get("/:id", purchaseOrderHandler.Get)
	purchaseOrders.Put("/:id", purchaseOrderHandler.Update)
	purchaseOrders.Delete("/:id", purchaseOrderHandler.Delete)
	purchaseOrders.Get("/:id/pdf", purchaseOrderHandler.PDF)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Stats)
}
