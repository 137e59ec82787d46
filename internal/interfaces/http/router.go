package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/movement"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	ActivityUC *usecase.ActivityLogUseCase
	BuyUC      *movement.BuyUseCase
	SaleUC     *movement.SaleUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
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

	// Users (protegido, solo admin; el alta desde aquí sí asigna rol)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC, deps.ActivityUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ActivityUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ActivityUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Buys (protegido): entradas de stock
	buys := protected.Group("/buys")
	buyHandler := NewBuyHandler(deps.BuyUC, deps.ActivityUC)
	buys.Post("/", buyHandler.Create)
	buys.Get("/", buyHandler.List)
	buys.Get("/:id", buyHandler.GetByID)
	buys.Put("/:id", buyHandler.Update)
	buys.Delete("/:id", buyHandler.Delete)

	// Sales (protegido): salidas de stock
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ActivityUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.List)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Put("/:id", saleHandler.Update)
	sales.Delete("/:id", saleHandler.Delete)

	// Activity log (protegido, solo admin, solo lectura)
	logs := protected.Group("/logs", RequireRole(entity.RoleAdmin))
	logHandler := NewLogHandler(deps.ActivityUC)
	logs.Get("/", logHandler.List)
}
