package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError lleva el mensaje concreto de validación que se devuelve al
// cliente. errors.Is(err, ErrInvalidInput) es verdadero para poder mapear a 400
// sin perder el detalle por campo.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// Validation construye un error de validación con mensaje para el cliente.
func Validation(reason string) error {
	return &ValidationError{Reason: reason}
}
