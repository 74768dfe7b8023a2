package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventario-core/internal/application/auth"
	"github.com/invorya/inventario-core/internal/application/report"
	"github.com/invorya/inventario-core/internal/application/stock"
	"github.com/invorya/inventario-core/internal/application/usecase"
	"github.com/invorya/inventario-core/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ManagerUC *usecase.ManagerUseCase
	StaffUC   *usecase.StaffUseCase
	ProductUC *usecase.ProductUseCase
	StockUC   *stock.UpdateStockUseCase
	LogUC     *usecase.LogUseCase
	ReportUC  *report.ReportUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
// Niveles: admin administra usuarios y managers; manager (o superior) gestiona
// productos, staff, stock y reportes; cualquier autenticado consulta lecturas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireLevel(authz.LevelAdmin)
	managerUp := RequireLevel(authz.LevelManager)
	anyStaff := RequireLevel(authz.LevelStaff)

	// Users (solo admin)
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle-activation", userHandler.ToggleActivation)
	users.Put("/:username/role", userHandler.SetRole)
	users.Delete("/:id", userHandler.Delete)

	// Managers: administración solo admin; el reporte del manager es un
	// reporte más y baja a nivel manager, igual que /reports/*.
	managers := protected.Group("/managers")
	managerHandler := NewManagerHandler(deps.ManagerUC, deps.ReportUC)
	managers.Get("/", adminOnly, managerHandler.List)
	managers.Get("/:id", adminOnly, managerHandler.GetByID)
	managers.Put("/:id", adminOnly, managerHandler.Update)
	managers.Get("/:id/staff", adminOnly, managerHandler.Staff)
	managers.Get("/:id/products", adminOnly, managerHandler.Products)
	managers.Get("/:id/report", managerUp, managerHandler.Report)
	managers.Delete("/:id", adminOnly, managerHandler.Delete)

	// Staff (manager o superior)
	staffGroup := protected.Group("/staff", managerUp)
	staffHandler := NewStaffHandler(deps.StaffUC)
	staffGroup.Post("/", staffHandler.Create)
	staffGroup.Get("/", staffHandler.List)
	staffGroup.Get("/:id", staffHandler.GetByID)
	staffGroup.Put("/:id", staffHandler.Update)
	staffGroup.Get("/:id/logs", staffHandler.Logs)
	staffGroup.Get("/:id/products", staffHandler.Products)
	staffGroup.Delete("/:id", staffHandler.Delete)

	// Products: lecturas para cualquier autenticado, escrituras manager+.
	// La mutación de stock también es manager+; además el motor exige que el
	// usuario resuelva a un perfil de Staff como performer del log.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockUC)
	products.Post("/", managerUp, productHandler.Create)
	products.Get("/", anyStaff, productHandler.List)
	products.Get("/:id", anyStaff, productHandler.GetByID)
	products.Put("/:id", managerUp, productHandler.Update)
	products.Delete("/:id", managerUp, productHandler.Delete)
	products.Get("/:id/stock", anyStaff, productHandler.GetStock)
	products.Post("/:id/stock", managerUp, productHandler.UpdateStock)
	products.Get("/:id/logs", anyStaff, productHandler.Logs)
	products.Get("/:id/barcode", anyStaff, productHandler.Barcode)

	// Logs (cualquier autenticado, solo lectura)
	logs := protected.Group("/logs", anyStaff)
	logHandler := NewLogHandler(deps.LogUC)
	logs.Get("/", logHandler.List)

	// Reports (manager o superior)
	reports := protected.Group("/reports", managerUp)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/inventory", reportHandler.InventoryReport)
	reports.Get("/statistics", reportHandler.InventoryStatistics)
}
