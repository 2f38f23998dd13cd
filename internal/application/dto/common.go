package dto

import "encoding/json"

// Raw campo JSON con seguimiento de presencia: UnmarshalJSON solo se invoca
// cuando la clave viene en el body, así que Set distingue "omitido" de
// "enviado" (incluido null explícito).
type Raw struct {
	Set  bool
	Data json.RawMessage
}

func (r *Raw) UnmarshalJSON(b []byte) error {
	r.Set = true
	r.Data = append(r.Data[:0], b...)
	return nil
}

// IsNull indica que el campo vino como null explícito.
func (r Raw) IsNull() bool {
	return r.Set && string(r.Data) == "null"
}

// OK envuelve una respuesta exitosa {ok:true, data}.
func OK(data any) map[string]any {
	return map[string]any{"ok": true, "data": data}
}

// Err envuelve una respuesta de error {ok:false, error}.
func Err(msg string) map[string]any {
	return map[string]any{"ok": false, "error": msg}
}

// ErrDetails igual que Err pero con detalles adicionales.
func ErrDetails(msg string, details any) map[string]any {
	return map[string]any{"ok": false, "error": msg, "details": details}
}
