// Command fill-weather runs a one-shot weather ingestion for every city,
// active or not.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"weatherreminder.app/config"
	"weatherreminder.app/database"
	"weatherreminder.app/providers"
	"weatherreminder.app/repository"
	"weatherreminder.app/service"
)

func main() {
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

	weatherService := service.NewWeatherService(
		providers.NewOpenWeatherMapProvider(&cfg.Weather),
		repository.NewCityRepository(db),
		repository.NewForecastRepository(db),
	)

	if err := weatherService.RefreshAllCities(); err != nil {
		slog.Error("Weather fill failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("The filling was successful.")
}
