// Package workflow centraliza la política de avance de órdenes: qué rol puede
// mover una orden desde su status actual y quién puede adjuntar fotos. Toda
// decisión de visibilidad o autorización sobre el ciclo de vida pasa por aquí;
// los handlers y el cliente no codifican reglas propias.
package workflow

import "fmt"

// Status del ciclo de vida de una orden. La progresión es estrictamente lineal:
// Ordered → In Process → In route → Delivered. Sin retrocesos ni saltos.
const (
	StatusOrdered   = "Ordered"
	StatusInProcess = "In Process"
	StatusInRoute   = "In route"
	StatusDelivered = "Delivered"
)

// Roles válidos del sistema (conjunto cerrado, autoritativo para autorización).
const (
	RoleAdmin      = "admin"
	RoleSales      = "sales"
	RolePurchasing = "purchasing"
	RoleWarehouse  = "warehouse"
	RoleRoute      = "route"
)

// MaxImages máximo de fotos por orden: una de carga y una de descarga.
const MaxImages = 2

// Descripciones asignadas a cada foto según su posición.
const (
	ImageTagLoaded   = "loaded"   // foto de carga (bodega despacha)
	ImageTagUnloaded = "unloaded" // foto de descarga (confirmación de entrega)
)

// Etiquetas de la acción que avanza la orden desde cada status.
var actionLabels = map[string]string{
	StatusOrdered:   "Procesar",
	StatusInProcess: "Rutear",
	StatusInRoute:   "Entregar",
}

// statusOrder posición de cada status en la progresión lineal.
var statusOrder = map[string]int{
	StatusOrdered:   0,
	StatusInProcess: 1,
	StatusInRoute:   2,
	StatusDelivered: 3,
}

// Decision resultado de evaluar la política para un rol, status y conteo de fotos.
type Decision struct {
	AdvanceVisible     bool
	ActionLabel        string
	ImageActionVisible bool
	ImageLabel         string
}

// ValidRole reporta si el rol pertenece al conjunto cerrado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleSales, RolePurchasing, RoleWarehouse, RoleRoute:
		return true
	}
	return false
}

// ValidStatus reporta si el status es uno de los cuatro canónicos.
func ValidStatus(status string) bool {
	_, ok := statusOrder[status]
	return ok
}

// Next devuelve el sucesor lineal del status. Delivered es terminal.
func Next(status string) (string, error) {
	switch status {
	case StatusOrdered:
		return StatusInProcess, nil
	case StatusInProcess:
		return StatusInRoute, nil
	case StatusInRoute:
		return StatusDelivered, nil
	case StatusDelivered:
		return "", fmt.Errorf("workflow: %q es terminal", status)
	}
	return "", fmt.Errorf("workflow: status desconocido %q", status)
}

// ActionLabel etiqueta del botón que avanza la orden desde el status dado.
// Cadena vacía si el status es terminal o desconocido.
func ActionLabel(status string) string {
	return actionLabels[status]
}

// CanAdvance reporta si el rol puede avanzar una orden que está en el status dado.
//
//	admin      → cualquier status no terminal
//	purchasing → solo Ordered
//	warehouse  → todo menos Ordered (desde In Process en adelante)
//	route      → solo In route (la transición a Delivered)
//	sales      → nunca
func CanAdvance(role, status string) bool {
	if !ValidStatus(status) || status == StatusDelivered {
		return false
	}
	switch role {
	case RoleAdmin:
		return true
	case RolePurchasing:
		return status == StatusOrdered
	case RoleWarehouse:
		return status != StatusOrdered
	case RoleRoute:
		return status == StatusInRoute
	}
	return false
}

// CanAttachImage reporta si el rol puede adjuntar una foto a una orden con el
// status y conteo de fotos dados. Jamás con 2 fotos, jamás en Ordered.
func CanAttachImage(role, status string, imageCount int) bool {
	if imageCount >= MaxImages || imageCount < 0 {
		return false
	}
	if !ValidStatus(status) || status == StatusOrdered {
		return false
	}
	switch role {
	case RoleAdmin:
		return true
	case RoleWarehouse:
		return imageCount == 0
	case RoleRoute:
		return imageCount == 1
	}
	return false
}

// ImageTag descripción que corresponde a la siguiente foto según el conteo actual.
func ImageTag(imageCount int) string {
	if imageCount == 0 {
		return ImageTagLoaded
	}
	return ImageTagUnloaded
}

// ImageLabel etiqueta del botón de adjuntar según el conteo actual de fotos.
func ImageLabel(imageCount int) string {
	if imageCount < 1 {
		return "Agregar foto carga"
	}
	return "Agregar foto descarga"
}

// Evaluate combina las reglas en una sola decisión para renderizar acciones.
func Evaluate(role, status string, imageCount int) Decision {
	d := Decision{
		AdvanceVisible:     CanAdvance(role, status),
		ImageActionVisible: CanAttachImage(role, status, imageCount),
	}
	if d.AdvanceVisible {
		d.ActionLabel = ActionLabel(status)
	}
	if d.ImageActionVisible {
		d.ImageLabel = ImageLabel(imageCount)
	}
	return d
}
