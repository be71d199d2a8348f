package repository

import (
	"errors"

	"gorm.io/gorm"
	"weatherreminder.app/models"
)

// UserRepository handles data access operations for user accounts
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new repository for user data
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user account
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID retrieves a user by ID; returns nil when absent
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByUsername retrieves a user by username; returns nil when absent
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByEmail retrieves a user by email; returns nil when absent
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// WithSubscriptionsAndCities retrieves the distinct users holding at least one
// subscription at the given frequency, with all their subscribed cities
// preloaded. Mirrors the fan-out query of the notification pipeline: a matching
// user receives a report for every city they subscribe to, not only the ones
// at this frequency.
func (r *UserRepository) WithSubscriptionsAndCities(frequency int) ([]models.User, error) {
	var users []models.User
	err := r.db.
		Distinct("users.*").
		Joins("JOIN subscriptions ON subscriptions.user_id = users.id").
		Where("subscriptions.frequency = ?", frequency).
		Preload("Cities").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
