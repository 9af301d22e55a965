// seed migra el esquema de BizTime y carga datos de ejemplo.
//
// Uso: go run ./cmd/seed [-reset]
// Con APP_ENV=test trabaja sobre biztime_test. -reset borra las filas antes de insertar.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/infrastructure/postgres"
	"github.com/jhoicas/biztime-api/pkg/config"
	"github.com/jhoicas/biztime-api/pkg/logger"
)

func main() {
	reset := flag.Bool("reset", false, "borrar companies e invoices antes de insertar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	from, to, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if from == to {
		log.Info().Int32("version", to).Msg("esquema al día")
	} else {
		log.Info().Int32("from", from).Int32("to", to).Msg("esquema migrado")
	}

	// Todo el seed en una transacción: o queda completo o no queda nada.
	err = postgres.NewTxRunner(pool).Run(ctx, func(
		tx postgres.Querier,
		companies repository.CompanyRepository,
		invoices repository.InvoiceRepository,
	) error {
		if *reset {
			if _, err := tx.Exec(ctx, `TRUNCATE invoices, companies RESTART IDENTITY`); err != nil {
				return err
			}
		}
		return seedSamples(ctx, log, companies, invoices)
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed fallido")
	}

	log.Info().
		Str("db", cfg.DB.DBName).
		Int("companies", len(sampleCompanies)).
		Int("invoices", len(sampleInvoices)).
		Msg("seed completado")
}
