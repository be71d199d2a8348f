package repository

import (
	"errors"

	"gorm.io/gorm"
	"weatherreminder.app/models"
)

// ForecastRepository handles data access operations for weather snapshots
type ForecastRepository struct {
	db *gorm.DB
}

// NewForecastRepository creates a new repository for forecast snapshots
func NewForecastRepository(db *gorm.DB) *ForecastRepository {
	return &ForecastRepository{db: db}
}

// Create appends a new immutable forecast snapshot
func (r *ForecastRepository) Create(forecast *models.CurrentWeather) error {
	return r.db.Create(forecast).Error
}

// LatestForCity retrieves the most recent snapshot for a city;
// returns nil when the city has no snapshot yet
func (r *ForecastRepository) LatestForCity(cityID uint) (*models.CurrentWeather, error) {
	var forecast models.CurrentWeather
	err := r.db.Where("city_id = ?", cityID).Order("date_time DESC").First(&forecast).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &forecast, nil
}

// CountForCity returns how many snapshots exist for a city
func (r *ForecastRepository) CountForCity(cityID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.CurrentWeather{}).Where("city_id = ?", cityID).Count(&count).Error
	return count, err
}

// DeleteAll purges every snapshot from the database
func (r *ForecastRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.CurrentWeather{}).Error
}
