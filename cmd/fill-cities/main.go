// Command fill-cities bulk-loads a static city dataset into one country.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"weatherreminder.app/config"
	"weatherreminder.app/database"
	"weatherreminder.app/importer"
	"weatherreminder.app/repository"
)

func main() {
	file := flag.String("file", "data/ua_cities.json", "path to the locations JSON dataset")
	country := flag.String("country", "Ukraine", "country name to import into")
	code := flag.String("code", "UA", "two-letter ISO code of the country")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.CloseDB(db); err != nil {
			slog.Warn("error closing database", "error", err)
		}
	}()

	if err := database.RunMigrations(db); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	cityImporter := importer.NewCityImporter(
		repository.NewCountryRepository(db),
		repository.NewCityRepository(db),
	)

	created, err := cityImporter.ImportFromJSON(*file, *country, *code)
	if err != nil {
		slog.Error("City import failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d cities into %s.\n", created, *country)
}
