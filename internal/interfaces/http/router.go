package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/clients"
	"github.com/jhoicas/clientes-api/internal/domain/plan"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClientUC *clients.UseCase
	Catalog  plan.Catalog
	Log      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clients
	clientsGroup := api.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC, deps.Log)
	clientsGroup.Get("/", clientHandler.List)
	clientsGroup.Post("/", clientHandler.Create)
	clientsGroup.Get("/:id", clientHandler.GetByID)
	clientsGroup.Put("/:id", clientHandler.Update)
	clientsGroup.Delete("/:id", clientHandler.Delete)
	clientsGroup.Post("/:id/hours", clientHandler.IncrementHours)

	// Plans (catálogo estático, solo lectura)
	planHandler := NewPlanHandler(deps.Catalog)
	api.Get("/plans", planHandler.List)
}
