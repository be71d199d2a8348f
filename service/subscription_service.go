package service

import (
	"fmt"
	"log/slog"

	"weatherreminder.app/errors"
	"weatherreminder.app/models"
)

// SubscriptionService handles subscription business logic, including keeping
// the city active flag in sync with the subscriber count.
type SubscriptionService struct {
	subscriptionRepo SubscriptionRepositoryInterface
	cityRepo         CityRepositoryInterface
}

// NewSubscriptionService creates a new subscription service
func NewSubscriptionService(
	subscriptionRepo SubscriptionRepositoryInterface,
	cityRepo CityRepositoryInterface,
) *SubscriptionService {
	return &SubscriptionService{
		subscriptionRepo: subscriptionRepo,
		cityRepo:         cityRepo,
	}
}

func validateFrequency(frequency int) error {
	if !models.IsValidFrequency(frequency) {
		return errors.NewValidationError(
			fmt.Sprintf("frequency must be one of: %v", models.Frequencies))
	}
	return nil
}

func toResponse(user *models.User, subscription *models.Subscription) *models.SubscriptionResponse {
	return &models.SubscriptionResponse{
		ID:        subscription.ID,
		User:      user.Username,
		City:      subscription.CityID,
		Frequency: subscription.Frequency,
	}
}

// Subscribe creates a new subscription for the user and marks the target city
// active when it was not already
func (s *SubscriptionService) Subscribe(user *models.User, req *models.SubscriptionRequest) (*models.SubscriptionResponse, error) {
	if err := validateFrequency(req.Frequency); err != nil {
		return nil, err
	}

	city, err := s.cityRepo.FindByID(req.City)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to look up city", err)
	}
	if city == nil {
		return nil, errors.NewValidationError("city does not exist")
	}

	existing, err := s.subscriptionRepo.FindByUserAndCity(user.ID, city.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to check existing subscription", err)
	}
	if existing != nil {
		return nil, errors.NewValidationError("you can only subscribe to one city once")
	}

	subscription := &models.Subscription{
		UserID:    user.ID,
		CityID:    city.ID,
		Frequency: req.Frequency,
	}
	if err := s.subscriptionRepo.Create(subscription); err != nil {
		return nil, errors.NewDatabaseError("failed to create subscription", err)
	}

	if !city.Active {
		if err := s.cityRepo.SetActive(city, true); err != nil {
			return nil, errors.NewDatabaseError("failed to activate city", err)
		}
		slog.Debug("city activated", "city", city.Name, "city_id", city.ID)
	}

	return toResponse(user, subscription), nil
}

// List retrieves the user's own subscriptions ordered by frequency
func (s *SubscriptionService) List(user *models.User) ([]models.SubscriptionResponse, error) {
	subscriptions, err := s.subscriptionRepo.UserSubscriptions(user.ID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list subscriptions", err)
	}

	responses := make([]models.SubscriptionResponse, 0, len(subscriptions))
	for i := range subscriptions {
		responses = append(responses, *toResponse(user, &subscriptions[i]))
	}
	return responses, nil
}

// Get retrieves one of the user's subscriptions by ID
func (s *SubscriptionService) Get(user *models.User, id uint) (*models.SubscriptionResponse, error) {
	subscription, err := s.findOwned(user, id)
	if err != nil {
		return nil, err
	}
	return toResponse(user, subscription), nil
}

// UpdateFrequency changes the frequency of one of the user's subscriptions
func (s *SubscriptionService) UpdateFrequency(user *models.User, id uint, frequency int) (*models.SubscriptionResponse, error) {
	if err := validateFrequency(frequency); err != nil {
		return nil, err
	}

	subscription, err := s.findOwned(user, id)
	if err != nil {
		return nil, err
	}

	subscription.Frequency = frequency
	if err := s.subscriptionRepo.Update(subscription); err != nil {
		return nil, errors.NewDatabaseError("failed to update subscription", err)
	}

	return toResponse(user, subscription), nil
}

// Unsubscribe deletes one of the user's subscriptions and deactivates the
// city when the deleted subscription was its last one
func (s *SubscriptionService) Unsubscribe(user *models.User, id uint) error {
	subscription, err := s.findOwned(user, id)
	if err != nil {
		return err
	}

	if err := s.subscriptionRepo.Delete(subscription); err != nil {
		return errors.NewDatabaseError("failed to delete subscription", err)
	}

	remaining, err := s.subscriptionRepo.CountByCity(subscription.CityID)
	if err != nil {
		return errors.NewDatabaseError("failed to count city subscriptions", err)
	}
	if remaining == 0 {
		city, err := s.cityRepo.FindByID(subscription.CityID)
		if err != nil {
			return errors.NewDatabaseError("failed to look up city", err)
		}
		if city != nil && city.Active {
			if err := s.cityRepo.SetActive(city, false); err != nil {
				return errors.NewDatabaseError("failed to deactivate city", err)
			}
			slog.Debug("city deactivated", "city", city.Name, "city_id", city.ID)
		}
	}

	return nil
}

// findOwned loads a subscription scoped to its owner; foreign or missing
// records surface as not found
func (s *SubscriptionService) findOwned(user *models.User, id uint) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.FindOwned(user.ID, id)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find subscription", err)
	}
	if subscription == nil {
		return nil, errors.NewNotFoundError("subscription not found")
	}
	return subscription, nil
}
