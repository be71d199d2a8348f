package repository

import (
	"errors"

	"gorm.io/gorm"
	"weatherreminder.app/models"
)

// SubscriptionRepository handles data access operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new repository for subscription data
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Create persists a new subscription
func (r *SubscriptionRepository) Create(subscription *models.Subscription) error {
	return r.db.Create(subscription).Error
}

// Update modifies an existing subscription
func (r *SubscriptionRepository) Update(subscription *models.Subscription) error {
	return r.db.Save(subscription).Error
}

// Delete removes a subscription
func (r *SubscriptionRepository) Delete(subscription *models.Subscription) error {
	return r.db.Delete(subscription).Error
}

// FindOwned retrieves a subscription by ID scoped to its owner;
// returns nil when absent or owned by someone else
func (r *SubscriptionRepository) FindOwned(userID, id uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("user_id = ?", userID).First(&subscription, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

// FindByUserAndCity retrieves a user's subscription for a city;
// returns nil when absent
func (r *SubscriptionRepository) FindByUserAndCity(userID, cityID uint) (*models.Subscription, error) {
	var subscription models.Subscription
	err := r.db.Where("user_id = ? AND city_id = ?", userID, cityID).First(&subscription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &subscription, nil
}

// UserSubscriptions retrieves all subscriptions of one user ordered by frequency
func (r *SubscriptionRepository) UserSubscriptions(userID uint) ([]models.Subscription, error) {
	var subscriptions []models.Subscription
	err := r.db.Where("user_id = ?", userID).Order("frequency").Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}

// CountByCity returns how many subscriptions currently reference a city
func (r *SubscriptionRepository) CountByCity(cityID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Where("city_id = ?", cityID).Count(&count).Error
	return count, err
}
