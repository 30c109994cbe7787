package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con fmt.Errorf("%w: detalle", ...) para que el
// caller pueda usar errors.Is y aun así mostrar un mensaje legible.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("ya existe un registro con ese nombre")
	ErrConstraint   = errors.New("restricción de integridad violada")
)
