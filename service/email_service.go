package service

import (
	"fmt"
	"strconv"
	"time"

	"weatherreminder.app/errors"
	"weatherreminder.app/models"
	"weatherreminder.app/providers"
)

// EmailService composes and sends forecast report emails through a provider
type EmailService struct {
	provider providers.EmailProvider
}

// NewEmailService creates a new email service with the specified provider
func NewEmailService(provider providers.EmailProvider) *EmailService {
	return &EmailService{
		provider: provider,
	}
}

// readableDateTime renders a snapshot timestamp as MM/DD/YYYY HH:MM in UTC
func readableDateTime(t time.Time) string {
	return t.UTC().Format("01/02/2006 15:04")
}

// formatNumber renders a float without trailing zeros (0.02 stays "0.02",
// 21 stays "21")
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SendForecastEmail sends the plain-text weather report for one city to a
// subscriber. The body layout is fixed and human-readable.
func (s *EmailService) SendForecastEmail(to, cityName string, forecast *models.CurrentWeather) error {
	if to == "" {
		return errors.NewValidationError("recipient email cannot be empty")
	}
	if cityName == "" {
		return errors.NewValidationError("city name cannot be empty")
	}
	if forecast == nil {
		return errors.NewValidationError("forecast cannot be nil")
	}

	subject := fmt.Sprintf("Weather in %s", cityName)
	body := fmt.Sprintf(
		"Quick report:\n"+
			"Weather status - %s\n"+
			"Brief description - %s\n"+
			"Temperature - %s\n"+
			"Feels like - %s\n"+
			"Pressure - %d\n"+
			"Humidity - %d\n"+
			"Wind Speed - %d\n"+
			"Forecast given as of %s UTC",
		forecast.WeatherStatus,
		forecast.WeatherDescription,
		formatNumber(forecast.Temp),
		formatNumber(forecast.FeelsLike),
		forecast.Pressure,
		forecast.Humidity,
		forecast.WindSpeed,
		readableDateTime(forecast.DateTime),
	)

	return s.provider.SendEmail(to, subject, body)
}
