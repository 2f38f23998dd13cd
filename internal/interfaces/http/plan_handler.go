package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/plan"
)

// PlanHandler expone el catálogo de planes (solo lectura, cargado al arrancar).
type PlanHandler struct {
	catalog plan.Catalog
}

// NewPlanHandler construye el handler.
func NewPlanHandler(catalog plan.Catalog) *PlanHandler {
	return &PlanHandler{catalog: catalog}
}

// List GET /api/plans
func (h *PlanHandler) List(c *fiber.Ctx) error {
	out := make(map[string]dto.PlanInfoResponse, len(h.catalog))
	for key, info := range h.catalog {
		out[key] = dto.PlanInfoResponse{
			Price: info.Price.InexactFloat64(),
			Hours: info.Hours,
			Label: info.Label,
		}
	}
	return c.JSON(dto.OK(out))
}
