package dto

import "math"

// RequestInfo datos de la petición que se devuelven en el sobre. IP es nil en producción.
type RequestInfo struct {
	IP     *string `json:"ip"`
	Method string  `json:"method"`
	URL    string  `json:"url"`
}

// Envelope cuerpo común de todas las respuestas HTTP.
type Envelope struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Request    RequestInfo `json:"request"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
}

// FieldError error de validación de un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors data de una respuesta 400 por validación.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

// Valores por defecto de paginación.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	// MaxPage cota de page; páginas mayores sólo pueden devolver listas vacías.
	MaxPage = 1_000_000
)

// PageQuery paginación por página (1-based) para listados.
type PageQuery struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// Normalize aplica valores por defecto y recorta pageSize a maxPageSize (si es > 0).
func (p *PageQuery) Normalize(maxPageSize int) {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if maxPageSize > 0 && p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
}

// Offset filas a saltar para la página actual.
func (p PageQuery) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	// Sin tope de pageSize el producto podría desbordar.
	if p.Page-1 > math.MaxInt32/p.PageSize {
		return math.MaxInt32
	}
	return (p.Page - 1) * p.PageSize
}

// PageResult lista paginada.
type PageResult[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

// NewPageResult construye el resultado; items nunca es nil para serializar [] en vez de null.
func NewPageResult[T any](items []T, total int, q PageQuery) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{Items: items, Total: total, Page: q.Page, PageSize: q.PageSize}
}

// ChangeStatusRequest entrada para cambiar el estado de una cuenta. No hay máquina de estados.
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=ACTIVE INACTIVE BLOCKED"`
}
