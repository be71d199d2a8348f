package providers

import (
	"weatherreminder.app/models"
	"weatherreminder.app/providers/cache"
)

// WeatherProvider defines the interface for weather data providers
type WeatherProvider interface {
	// GetCurrentWeather returns the current weather at the given coordinates.
	GetCurrentWeather(lat, lon float64) (*models.WeatherReport, error)
	// GetForecast returns hourly and daily forecast lists for the coordinates.
	GetForecast(lat, lon float64) (*models.ForecastList, error)
}

// Cache is an alias to avoid circular imports
type Cache = cache.CacheInterface

// EmailProvider defines the interface for email providers. Forecast report
// delivery is plain text only.
type EmailProvider interface {
	SendEmail(to, subject, body string) error
}
