package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa un cliente del registro: plan contratado, horas consumidas
// y abono acumulado. Los campos de texto opcionales se guardan como NULL cuando
// están vacíos.
type Client struct {
	ID                int64
	Name              string
	DNI               *string
	Representative    *string
	RepresentativeDNI *string
	Email             *string
	Address           *string
	Phone             *string
	Plan              string // clave del catálogo de planes
	Abono             decimal.Decimal
	Hours             int
	CreatedDate       time.Time // DATE, asignada por la base de datos
}

// TextPatch estado triple para campos de texto opcionales en actualizaciones
// parciales: no enviado (Set=false), limpiar a NULL (Set y Value=nil) o
// escribir un valor (Set y Value!=nil).
type TextPatch struct {
	Set   bool
	Value *string
}

// Clear construye un TextPatch que limpia el campo.
func Clear() TextPatch { return TextPatch{Set: true} }

// Text construye un TextPatch con valor.
func Text(s string) TextPatch { return TextPatch{Set: true, Value: &s} }

// ClientPatch conjunto de campos a modificar en una actualización parcial.
// Un puntero nil (o TextPatch sin Set) significa "no tocar".
type ClientPatch struct {
	Name              *string
	DNI               TextPatch
	Representative    TextPatch
	RepresentativeDNI TextPatch
	Email             TextPatch
	Address           TextPatch
	Phone             TextPatch
	Plan              *string
	Abono             *decimal.Decimal
	Hours             *int
}

// IsZero indica que el patch no modifica ningún campo.
func (p ClientPatch) IsZero() bool {
	return p.Name == nil &&
		!p.DNI.Set && !p.Representative.Set && !p.RepresentativeDNI.Set &&
		!p.Email.Set && !p.Address.Set && !p.Phone.Set &&
		p.Plan == nil && p.Abono == nil && p.Hours == nil
}
