// Command seed loads a laptop fixture file into the catalog.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"lapmatch/config"
	"lapmatch/internal/domain/entity"
	logs "lapmatch/internal/infra/log"
	"lapmatch/internal/infra/persistence/postgres"
	"lapmatch/internal/usecase/impl"

	json "github.com/goccy/go-json"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	fixturePath := flag.String("file", "", "path to the laptop fixture JSON (overrides config)")
	flag.Parse()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		slog.Error("Failed to create logger", slog.Any("error", err))
		os.Exit(1)
	}

	path := *fixturePath
	if path == "" && cfg.Seed != nil {
		path = cfg.Seed.FixturePath
	}
	if path == "" {
		logger.Error("No fixture path given; use -file or seed.fixturePath")
		os.Exit(1)
	}

	if err := run(cfg, logger, path); err != nil {
		logger.Error("Seeding failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var laptops []*entity.Laptop
	if err := json.Unmarshal(raw, &laptops); err != nil {
		return err
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	laptopUsecase := impl.NewLaptopService(impl.LaptopServiceParams{
		LaptopRepo: postgres.NewLaptopRepository(db),
		Logger:     logger,
	})

	created, err := laptopUsecase.BulkCreateLaptops(context.Background(), laptops)
	if err != nil {
		return err
	}

	logger.Info("Catalog seeded",
		slog.String("fixture", path),
		slog.Int("created", created),
	)

	return nil
}
