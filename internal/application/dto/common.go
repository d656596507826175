package dto

// PageQuery parámetros de paginación de los listados (?page=1&limit=10&status=).
type PageQuery struct {
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
	Status string `query:"status"`
}

// Defaults aplica página 1 y tamaño 10 cuando faltan o son inválidos.
func (p *PageQuery) Defaults() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 10
	}
}

// Offset desplazamiento SQL equivalente a la página solicitada.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PagedResponse envoltura de todos los listados: { data, totalItems, totalPages }.
type PagedResponse struct {
	Data       any `json:"data"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// NewPagedResponse arma la envoltura calculando totalPages a partir del límite.
func NewPagedResponse(data any, totalItems, limit int) PagedResponse {
	pages := 0
	if limit > 0 {
		pages = (totalItems + limit - 1) / limit
	}
	return PagedResponse{Data: data, TotalItems: totalItems, TotalPages: pages}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
