package service

import (
	"fmt"
	"log/slog"

	"weatherreminder.app/errors"
	"weatherreminder.app/metrics"
	"weatherreminder.app/models"
)

// NotificationService fans out forecast report emails to subscribers of a
// given frequency tier.
type NotificationService struct {
	userRepo     UserRepositoryInterface
	forecastRepo ForecastRepositoryInterface
	emailService EmailServiceInterface
}

// NewNotificationService creates a new notification dispatch service
func NewNotificationService(
	userRepo UserRepositoryInterface,
	forecastRepo ForecastRepositoryInterface,
	emailService EmailServiceInterface,
) *NotificationService {
	return &NotificationService{
		userRepo:     userRepo,
		forecastRepo: forecastRepo,
		emailService: emailService,
	}
}

// SendUsersWeatherForecast emails the latest forecast snapshot of every
// subscribed city to every user holding at least one subscription with the
// given frequency. With no matching subscribers the call is a no-op. A city
// without a snapshot yet is skipped with a warning.
func (s *NotificationService) SendUsersWeatherForecast(frequency int) error {
	if !models.IsValidFrequency(frequency) {
		return errors.NewValidationError(
			fmt.Sprintf("frequency must be one of: %v", models.Frequencies))
	}

	users, err := s.userRepo.WithSubscriptionsAndCities(frequency)
	if err != nil {
		return errors.NewDatabaseError("failed to load subscribers", err)
	}

	if len(users) == 0 {
		return nil
	}

	slog.Info("dispatching weather forecasts", "frequency", frequency, "users", len(users))

	for i := range users {
		user := &users[i]
		for j := range user.Cities {
			s.sendCityForecast(user, &user.Cities[j])
		}
	}

	return nil
}

func (s *NotificationService) sendCityForecast(user *models.User, city *models.City) {
	forecast, err := s.forecastRepo.LatestForCity(city.ID)
	if err != nil {
		slog.Warn("failed to load latest forecast",
			"city", city.Name, "city_id", city.ID, "error", err)
		return
	}
	if forecast == nil {
		slog.Warn("no forecast snapshot for city yet, skipping",
			"city", city.Name, "city_id", city.ID)
		return
	}

	if err := s.emailService.SendForecastEmail(user.Email, city.Name, forecast); err != nil {
		slog.Warn("failed to send forecast email",
			"email", user.Email, "city", city.Name, "error", err)
		return
	}

	metrics.RecordEmailSent()
}
