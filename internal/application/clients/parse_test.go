package clients

import (
	"testing"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// raw simula un campo presente en el body con el JSON dado.
func raw(js string) dto.Raw {
	return dto.Raw{Set: true, Data: []byte(js)}
}

// omitted simula un campo ausente del body.
func omitted() dto.Raw { return dto.Raw{} }

func TestParseID(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"42", 42, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		id, ok := parseID(tc.in)
		assert.Equal(t, tc.ok, ok, "parseID(%q)", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, id)
		}
	}
}

func TestParseDelta(t *testing.T) {
	// Ausente, null o vacío: vale 1 (un click = una hora).
	for _, r := range []dto.Raw{omitted(), raw(`null`), raw(`""`)} {
		d, ok := parseDelta(r)
		require.True(t, ok)
		assert.Equal(t, 1, d)
	}

	// Dentro del rango 1..24.
	d, ok := parseDelta(raw(`5`))
	require.True(t, ok)
	assert.Equal(t, 5, d)

	d, ok = parseDelta(raw(`24`))
	require.True(t, ok, "24 es el tope permitido")
	assert.Equal(t, 24, d)

	// Cadenas numéricas se aceptan igual que el Number() del cliente.
	d, ok = parseDelta(raw(`"3"`))
	require.True(t, ok)
	assert.Equal(t, 3, d)

	// Fuera de rango o no entero: inválido.
	for _, js := range []string{`0`, `25`, `-1`, `1.5`, `"abc"`, `true`} {
		_, ok := parseDelta(raw(js))
		assert.False(t, ok, "delta %s debe ser inválido", js)
	}
}

func TestParseText_TresEstados(t *testing.T) {
	// Omitido: no tocar el campo.
	tp, ok := parseText(omitted())
	require.True(t, ok)
	assert.False(t, tp.Set)

	// null explícito: limpiar a NULL.
	tp, ok = parseText(raw(`null`))
	require.True(t, ok)
	assert.True(t, tp.Set)
	assert.Nil(t, tp.Value)

	// Vacío tras trim: también limpia.
	tp, ok = parseText(raw(`"   "`))
	require.True(t, ok)
	assert.True(t, tp.Set)
	assert.Nil(t, tp.Value)

	// Valor: se guarda recortado.
	tp, ok = parseText(raw(`"  V-12345678  "`))
	require.True(t, ok)
	require.NotNil(t, tp.Value)
	assert.Equal(t, "V-12345678", *tp.Value)

	// No-cadena: inválido.
	_, ok = parseText(raw(`123`))
	assert.False(t, ok)
}

func TestParseName(t *testing.T) {
	name, ok := parseName(raw(`"  Ana  "`))
	require.True(t, ok)
	assert.Equal(t, "Ana", name)

	for _, js := range []string{`""`, `"   "`, `null`, `42`} {
		_, ok := parseName(raw(js))
		assert.False(t, ok, "name %s debe ser inválido", js)
	}
	_, ok = parseName(omitted())
	assert.False(t, ok)
}

func TestParseMoney_Estricto(t *testing.T) {
	// null y vacío valen 0.
	for _, r := range []dto.Raw{raw(`null`), raw(`""`), omitted()} {
		d, ok := parseMoney(r)
		require.True(t, ok)
		assert.True(t, d.IsZero())
	}

	d, ok := parseMoney(raw(`12.5`))
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromFloat(12.5)))

	// Cadena numérica aceptada.
	d, ok = parseMoney(raw(`"7.25"`))
	require.True(t, ok)
	assert.True(t, d.Equal(decimal.NewFromFloat(7.25)))

	// Negativo o no numérico: inválido (sin fallback en la ruta estricta).
	for _, js := range []string{`-5`, `"-0.01"`, `"abc"`, `true`, `[]`} {
		_, ok := parseMoney(raw(js))
		assert.False(t, ok, "monto %s debe ser inválido", js)
	}
}

func TestParseMoneyLax_CaeADefecto(t *testing.T) {
	// El alta tolera montos malformados y cae a 0.
	for _, js := range []string{`-5`, `"abc"`, `true`} {
		assert.True(t, parseMoneyLax(raw(js)).IsZero(), "monto %s debe caer a 0", js)
	}
	assert.True(t, parseMoneyLax(raw(`30`)).Equal(decimal.NewFromInt(30)))
}

func TestParseHours(t *testing.T) {
	h, ok := parseHours(raw(`8`))
	require.True(t, ok)
	assert.Equal(t, 8, h)

	// Se trunca a entero.
	h, ok = parseHours(raw(`3.9`))
	require.True(t, ok)
	assert.Equal(t, 3, h)

	// null y vacío valen 0.
	h, ok = parseHours(raw(`null`))
	require.True(t, ok)
	assert.Equal(t, 0, h)

	_, ok = parseHours(raw(`-1`))
	assert.False(t, ok)

	assert.Equal(t, 0, parseHoursLax(raw(`-1`)), "la variante laxa cae a 0")
	assert.Equal(t, 0, parseHoursLax(raw(`"x"`)))
}
