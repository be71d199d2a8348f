package service

import (
	"log/slog"
	"time"

	"weatherreminder.app/errors"
	"weatherreminder.app/metrics"
	"weatherreminder.app/models"
	"weatherreminder.app/providers"
)

// WeatherService runs the forecast ingestion pipeline: it fetches current
// weather from a provider and appends immutable snapshots per city.
type WeatherService struct {
	provider     providers.WeatherProvider
	cityRepo     CityRepositoryInterface
	forecastRepo ForecastRepositoryInterface
}

// NewWeatherService creates a new weather ingestion service
func NewWeatherService(
	provider providers.WeatherProvider,
	cityRepo CityRepositoryInterface,
	forecastRepo ForecastRepositoryInterface,
) *WeatherService {
	return &WeatherService{
		provider:     provider,
		cityRepo:     cityRepo,
		forecastRepo: forecastRepo,
	}
}

// FillCityWeather fetches the current weather for one city and appends a new
// snapshot. Running it twice within the same hour creates two rows; there is
// no deduplication.
func (s *WeatherService) FillCityWeather(city *models.City) error {
	report, err := s.provider.GetCurrentWeather(city.Lat, city.Lon)
	if err != nil {
		metrics.RecordFetch("error")
		return err
	}
	metrics.RecordFetch("success")

	forecast := &models.CurrentWeather{
		WeatherStatus:      report.Status,
		WeatherDescription: report.Description,
		Temp:               report.Temp,
		FeelsLike:          report.FeelsLike,
		Pressure:           report.Pressure,
		Humidity:           report.Humidity,
		WindSpeed:          int(report.WindSpeed),
		DateTime:           time.Unix(report.UnixTime, 0).UTC(),
		CityID:             city.ID,
	}

	if err := s.forecastRepo.Create(forecast); err != nil {
		return errors.NewDatabaseError("failed to store forecast snapshot", err)
	}
	return nil
}

// RefreshActiveCities runs the hourly ingestion over every active city.
// A failing city is logged and skipped; the rest of the batch continues.
func (s *WeatherService) RefreshActiveCities() error {
	cities, err := s.cityRepo.ActiveCities()
	if err != nil {
		return errors.NewDatabaseError("failed to load active cities", err)
	}

	s.fillCities(cities)
	return nil
}

// RefreshAllCities runs a one-shot ingestion over every city regardless of
// the active flag. Used by the fill-weather maintenance command.
func (s *WeatherService) RefreshAllCities() error {
	cities, err := s.cityRepo.AllCities()
	if err != nil {
		return errors.NewDatabaseError("failed to load cities", err)
	}

	s.fillCities(cities)
	return nil
}

func (s *WeatherService) fillCities(cities []models.City) {
	for i := range cities {
		city := &cities[i]
		if err := s.FillCityWeather(city); err != nil {
			slog.Warn("failed to fill city weather",
				"city", city.Name, "city_id", city.ID, "error", err)
			continue
		}
	}
}

// GetForecast exposes the richer hourly/daily forecast lists for a city.
// Unused by the scheduled pipeline.
func (s *WeatherService) GetForecast(city *models.City) (*models.ForecastList, error) {
	return s.provider.GetForecast(city.Lat, city.Lon)
}
