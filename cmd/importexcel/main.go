// Command importexcel ingests a local shelf-availability Excel export through
// the same pipeline as POST /api/import/excel. Useful for backfills and for
// loading historical exports without going through the HTTP surface.
//
// Usage: importexcel -file mediciones.xlsx
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"osadash/internal/config"
	"osadash/internal/infra"
	"osadash/internal/repository"
	"osadash/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	path := flag.String("file", "", "ruta del archivo .xlsx a importar")
	flag.Parse()
	if *path == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.DBBackend).Msg("failed to connect to database")
	}
	defer infra.Close(db)

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal().Err(err).Str("file", *path).Msg("failed to read file")
	}

	svc := service.NewImportService(repository.NewMedicionRepository(db))
	report, err := svc.ImportarExcel(context.Background(), data)
	if err != nil {
		log.Fatal().Err(err).Msg("import failed")
	}

	log.Info().
		Int("inserted", report.Inserted).
		Int("skipped", report.Skipped).
		Int("total_rows", report.TotalRows).
		Msg("import finished")
}
