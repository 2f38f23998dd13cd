package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/clientes-api/internal/application/clients"
	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain"
	"github.com/jhoicas/clientes-api/pkg/logger"
)

// ClientHandler maneja las peticiones HTTP del registro de clientes.
type ClientHandler struct {
	uc  *clients.UseCase
	log *logger.Logger
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.UseCase, log *logger.Logger) *ClientHandler {
	return &ClientHandler{uc: uc, log: log}
}

// respond mapea errores de dominio a HTTP: validación -> 400 con el mensaje
// del campo, no encontrado -> 404, resto -> 500 genérico (el detalle va al log).
func (h *ClientHandler) respond(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err(err.Error()))
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.Err("Client not found"))
	}
	h.log.Error().Err(err).Str("path", c.Path()).Msg("operación de cliente fallida")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("Internal server error"))
}

// parseID valida el segmento :id de la ruta.
func (h *ClientHandler) parseID(c *fiber.Ctx) (int64, bool) {
	id, ok := clients.ParseID(c.Params("id"))
	return id, ok
}

// List GET /api/clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(list))
}

// GetByID GET /api/clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid id"))
	}
	client, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(client))
}

// Create POST /api/clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid JSON body"))
	}
	client, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(client))
}

// Update PUT /api/clients/:id
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid id"))
	}
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid JSON body"))
	}
	client, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(client))
}

// Delete DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid id"))
	}
	client, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(client))
}

// IncrementHours POST /api/clients/:id/hours
// Un body ausente o malformado se trata como {} (delta por defecto 1).
func (h *ClientHandler) IncrementHours(c *fiber.Ctx) error {
	id, ok := h.parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("Invalid id"))
	}
	var in dto.IncrementHoursRequest
	if body := c.Body(); len(body) > 0 {
		_ = json.Unmarshal(body, &in)
	}
	client, err := h.uc.IncrementHours(c.Context(), id, in.Delta)
	if err != nil {
		return h.respond(c, err)
	}
	return c.JSON(dto.OK(client))
}
