package dto

// ListResponse envoltorio de los listados (sin paginación: los volúmenes son de un solo usuario).
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

// NewList construye un ListResponse garantizando "items": [] en lugar de null.
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
