package clients

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Parsers del normalizador de dominio: convierten campos JSON crudos en
// valores tipados. Devuelven (valor, ok) en lugar de panics o errores: el caso
// de uso decide el mensaje por campo.

// parseID acepta únicamente enteros positivos ("1", "42").
func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// isEmpty detecta omitido, null explícito o cadena vacía.
func isEmpty(r dto.Raw) bool {
	return !r.Set || r.IsNull() || string(r.Data) == `""`
}

// decodeNumber acepta números JSON y cadenas numéricas ("12.5"), como hacía
// la coerción Number(v) del cliente original.
func decodeNumber(r dto.Raw) (decimal.Decimal, bool) {
	var d decimal.Decimal
	if err := json.Unmarshal(r.Data, &d); err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseDelta delta de horas: omitido/null/"" vale 1; si no, entero entre 1 y
// 24. El tope evita que un solo click corrompa la contabilidad de horas.
func parseDelta(r dto.Raw) (int, bool) {
	if isEmpty(r) {
		return 1, true
	}
	d, ok := decodeNumber(r)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	n := d.IntPart()
	if n < 1 || n > 24 {
		return 0, false
	}
	return int(n), true
}

// parseText campo de texto opcional en tres estados: no enviado (no tocar),
// null o vacío tras trim (limpiar a NULL), o valor recortado. Un valor que no
// sea cadena es inválido.
func parseText(r dto.Raw) (entity.TextPatch, bool) {
	if !r.Set {
		return entity.TextPatch{}, true
	}
	if r.IsNull() {
		return entity.Clear(), true
	}
	var s string
	if err := json.Unmarshal(r.Data, &s); err != nil {
		return entity.TextPatch{}, false
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return entity.Clear(), true
	}
	return entity.Text(t), true
}

// parseName nombre requerido: cadena no vacía tras trim.
func parseName(r dto.Raw) (string, bool) {
	if !r.Set || r.IsNull() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Data, &s); err != nil {
		return "", false
	}
	t := strings.TrimSpace(s)
	if t == "" {
		return "", false
	}
	return t, true
}

// parseString cadena simple (para plan).
func parseString(r dto.Raw) (string, bool) {
	if !r.Set || r.IsNull() {
		return "", false
	}
	var s string
	if err := json.Unmarshal(r.Data, &s); err != nil {
		return "", false
	}
	return s, true
}

// parseMoney monto no negativo estricto: null/"" vale 0; cualquier otro valor
// debe ser un número finito >= 0.
func parseMoney(r dto.Raw) (decimal.Decimal, bool) {
	if isEmpty(r) {
		return decimal.Zero, true
	}
	d, ok := decodeNumber(r)
	if !ok || d.IsNegative() {
		return decimal.Zero, false
	}
	return d, true
}

// parseMoneyLax variante tolerante del alta: un monto inválido o negativo cae
// al valor por defecto 0 en lugar de fallar (formularios con decimales rotos).
func parseMoneyLax(r dto.Raw) decimal.Decimal {
	d, ok := parseMoney(r)
	if !ok {
		return decimal.Zero
	}
	return d
}

// parseHours horas no negativas estrictas: null/"" vale 0; si no, número >= 0
// truncado a entero.
func parseHours(r dto.Raw) (int, bool) {
	if isEmpty(r) {
		return 0, true
	}
	d, ok := decodeNumber(r)
	if !ok || d.IsNegative() {
		return 0, false
	}
	return int(d.IntPart()), true
}

// parseHoursLax variante tolerante del alta: inválido o negativo cae a 0.
func parseHoursLax(r dto.Raw) int {
	h, ok := parseHours(r)
	if !ok {
		return 0
	}
	return h
}
