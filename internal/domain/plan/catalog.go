package plan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
)

// Info datos inmutables de un plan: precio, horas incluidas y etiqueta visible.
type Info struct {
	Price decimal.Decimal `json:"price"`
	Hours int             `json:"hours"`
	Label string          `json:"label"`
}

// Catalog mapa plan -> Info. Se carga una sola vez al arrancar y no se muta
// después, por lo que es seguro para lecturas concurrentes sin sincronización.
type Catalog map[string]Info

// Load lee el catálogo desde un archivo JSON. Un catálogo vacío o ilegible es
// un error fatal de configuración: la aplicación no puede operar sin planes.
func Load(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer catálogo de planes: %w", err)
	}
	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parsear catálogo de planes: %w", err)
	}
	if len(c) == 0 {
		return nil, fmt.Errorf("catálogo de planes vacío: %s", path)
	}
	for key, info := range c {
		if info.Hours < 0 || info.Price.IsNegative() {
			return nil, fmt.Errorf("plan %q con precio u horas negativas", key)
		}
	}
	return c, nil
}

// Get devuelve la información del plan si existe.
func (c Catalog) Get(key string) (Info, bool) {
	info, ok := c[key]
	return info, ok
}

// Has indica si la clave existe en el catálogo.
func (c Catalog) Has(key string) bool {
	_, ok := c[key]
	return ok
}
