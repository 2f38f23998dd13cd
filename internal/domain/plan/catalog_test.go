package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_CatalogoValido(t *testing.T) {
	path := writeCatalog(t, `{
		"4h":    {"price": 20, "hours": 4,  "label": "Plan 4 horas"},
		"12h-u": {"price": 50, "hours": 12, "label": "Plan 12 horas (uso único)"}
	}`)

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c, 2)

	info, ok := c.Get("12h-u")
	require.True(t, ok, "12h-u debe existir en el catálogo")
	assert.Equal(t, 12, info.Hours)
	assert.True(t, info.Price.Equal(decimal.NewFromInt(50)), "precio debe ser 50")
	assert.Equal(t, "Plan 12 horas (uso único)", info.Label)

	assert.True(t, c.Has("4h"))
	assert.False(t, c.Has("99h"), "un plan inexistente no debe resolver")
}

func TestLoad_CatalogoVacioEsFatal(t *testing.T) {
	path := writeCatalog(t, `{}`)
	_, err := Load(path)
	require.Error(t, err, "un catálogo vacío es error de configuración")
}

func TestLoad_ArchivoInexistente(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-existe.json"))
	require.Error(t, err)
}

func TestLoad_JSONInvalido(t *testing.T) {
	path := writeCatalog(t, `{"4h": `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_ValoresNegativosRechazados(t *testing.T) {
	path := writeCatalog(t, `{"raro": {"price": -1, "hours": 4, "label": "x"}}`)
	_, err := Load(path)
	require.Error(t, err, "precio negativo debe rechazarse al cargar")
}
