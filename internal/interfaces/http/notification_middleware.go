package http

import (
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/logistica-api/internal/application/dto"
	"github.com/tu-usuario/logistica-api/pkg/notify"
)

// notificationsPrefix rutas del propio recurso de notificaciones; descartar
// una notificación no debe publicar otra.
const notificationsPrefix = "/api/notifications"

// NotificationMiddleware publica en el bus el resultado de cada operación de
// escritura: éxito para 2xx de métodos mutantes y error para cualquier 4xx/5xx.
// Toda falla termina en una notificación; ninguna operación falla en silencio.
func NotificationMiddleware(bus *notify.Bus) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), notificationsPrefix) {
			return c.Next()
		}

		err := c.Next()

		status := c.Response().StatusCode()
		if status >= fiber.StatusBadRequest {
			bus.Error(errorMessage(c.Response().Body()))
			return err
		}
		if isMutating(c.Method()) {
			bus.Success(successMessage(c.Method()))
		}
		return err
	}
}

func isMutating(method string) bool {
	switch method {
	case fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete:
		return true
	}
	return false
}

func successMessage(method string) string {
	switch method {
	case fiber.MethodPost:
		return "Registro creado correctamente"
	case fiber.MethodPut, fiber.MethodPatch:
		return "Registro actualizado correctamente"
	case fiber.MethodDelete:
		return "Registro eliminado correctamente"
	}
	return ""
}

// errorMessage extrae el mensaje del cuerpo de error; si no es el formato
// esperado, el bus pone el mensaje genérico.
func errorMessage(body []byte) string {
	var e dto.ErrorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}
