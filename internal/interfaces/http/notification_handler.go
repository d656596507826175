package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logistica-api/pkg/notify"
)

// NotificationHandler expone las notificaciones activas del bus.
type NotificationHandler struct {
	bus *notify.Bus
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(bus *notify.Bus) *NotificationHandler {
	return &NotificationHandler{bus: bus}
}

// List GET /api/notifications — activas, la más reciente primero.
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.bus.Active())
}

// Dismiss DELETE /api/notifications/:id — descarte manual, idempotente.
func (h *NotificationHandler) Dismiss(c *fiber.Ctx) error {
	h.bus.Dismiss(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
