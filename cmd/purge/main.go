// Command purge removes all weather snapshots or all cities on demand.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"weatherreminder.app/config"
	"weatherreminder.app/database"
	"weatherreminder.app/repository"
)

func main() {
	forecasts := flag.Bool("forecasts", false, "delete all weather forecast snapshots")
	cities := flag.Bool("cities", false, "delete all cities")
	flag.Parse()

	if !*forecasts && !*cities {
		fmt.Fprintln(os.Stderr, "nothing to purge: pass -forecasts and/or -cities")
		os.Exit(2)
	}

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

	if *forecasts {
		if err := repository.NewForecastRepository(db).DeleteAll(); err != nil {
			slog.Error("Failed to delete forecasts", "error", err)
			os.Exit(1)
		}
		fmt.Println("All weather forecasts deleted successfully.")
	}

	if *cities {
		if err := repository.NewCityRepository(db).DeleteAll(); err != nil {
			slog.Error("Failed to delete cities", "error", err)
			os.Exit(1)
		}
		fmt.Println("All cities deleted successfully.")
	}
}
