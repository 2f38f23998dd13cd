package main

import (
	"context"

	"github.com/jhoicas/clientes-api/internal/domain/entity"
	"github.com/jhoicas/clientes-api/internal/domain/plan"
	"github.com/jhoicas/clientes-api/internal/infrastructure/postgres"
	"github.com/jhoicas/clientes-api/pkg/config"
	"github.com/jhoicas/clientes-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Siembra clientes de demostración a través de la capa de repositorio.
// No hace nada si la tabla ya tiene filas.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	catalog, err := plan.Load(cfg.Plans.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar catálogo de planes")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewClientRepository(pool)

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listar clientes")
	}
	if len(existing) > 0 {
		log.Info().Int("clientes", len(existing)).Msg("la tabla ya tiene datos, no se siembra")
		return
	}

	str := func(s string) *string { return &s }
	demo := []*entity.Client{
		{
			Name:  "María Fernández",
			DNI:   str("28456789"),
			Email: str("maria.fernandez@example.com"),
			Phone: str("+58 412 5550101"),
			Plan:  "12h-u",
			Abono: decimal.NewFromInt(25),
			Hours: 3,
		},
		{
			Name:           "Colegio San Martín",
			Representative: str("José Paredes"),
			Plan:           "24h",
			Abono:          decimal.NewFromInt(90),
			Hours:          10,
		},
		{
			Name:  "Luis Herrera",
			Plan:  "4h",
			Abono: decimal.Zero,
			Hours: 0,
		},
	}

	for _, c := range demo {
		if !catalog.Has(c.Plan) {
			log.Fatal().Str("plan", c.Plan).Msg("plan de demo no existe en el catálogo")
		}
		if err := repo.Create(ctx, c); err != nil {
			log.Fatal().Err(err).Str("name", c.Name).Msg("insertar cliente de demo")
		}
		log.Info().Int64("id", c.ID).Str("name", c.Name).Msg("cliente sembrado")
	}
}
