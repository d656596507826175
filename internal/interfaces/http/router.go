package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logistica-api/internal/application/auth"
	"github.com/tu-usuario/logistica-api/internal/application/usecase"
	"github.com/tu-usuario/logistica-api/pkg/notify"
	"github.com/tu-usuario/logistica-api/pkg/workflow"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	OrderUC    *usecase.OrderUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	Bus        *notify.Bus
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", NotificationMiddleware(deps.Bus))
	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Orders. El token va por ruta y no como middleware del grupo: un Use
	// sobre /orders interceptaría también la consulta pública, que vive bajo
	// el mismo prefijo.
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Post("/", requireAuth, orderHandler.Create)
	orders.Get("/", requireAuth, orderHandler.List)
	orders.Get("/:id", requireAuth, orderHandler.GetByID)
	orders.Get("/:id/actions", requireAuth, orderHandler.Actions)
	orders.Get("/:id/pdf", requireAuth, orderHandler.DeliveryNote)
	orders.Put("/:id", requireAuth, orderHandler.Update)
	orders.Post("/upload/:id", requireAuth, orderHandler.UploadImage)

	// Consulta pública de pedido (sin sesión). Va después de las rutas con
	// sufijo literal para que /orders/:id/actions no caiga aquí.
	orders.Get("/:customerNumber/:orderId", orderHandler.Lookup)

	// Customers (protegido; el alta es solo admin, lectura y typeahead para todos)
	customers := api.Group("/customers", requireAuth)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", RequireRole(workflow.RoleAdmin), customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:customerNumber", customerHandler.GetByNumber)

	// Users (protegido, solo admin)
	users := api.Group("/users", requireAuth, RequireRole(workflow.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Notifications (protegido). El middleware de notificaciones ignora este
	// prefijo para que listar o descartar no genere notificaciones nuevas.
	notifications := api.Group("/notifications", requireAuth)
	notificationHandler := NewNotificationHandler(deps.Bus)
	notifications.Get("/", notificationHandler.List)
	notifications.Delete("/:id", notificationHandler.Dismiss)
}
