// Package repository implements the data access layer for the application
package repository

import (
	"errors"

	"gorm.io/gorm"
	"weatherreminder.app/models"
)

// CountryRepository handles data access operations for countries
type CountryRepository struct {
	db *gorm.DB
}

// NewCountryRepository creates a new repository for country data
func NewCountryRepository(db *gorm.DB) *CountryRepository {
	return &CountryRepository{db: db}
}

// Search retrieves countries whose name contains the given fragment,
// case-insensitively. An empty fragment returns all countries.
func (r *CountryRepository) Search(name string) ([]models.Country, error) {
	var countries []models.Country

	query := r.db.Order("id")
	if name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	if err := query.Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// FindByID retrieves a country by its ID; returns nil when absent
func (r *CountryRepository) FindByID(id uint) (*models.Country, error) {
	var country models.Country
	if err := r.db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &country, nil
}

// FindOrCreate returns the country with the given name and code,
// creating it when missing
func (r *CountryRepository) FindOrCreate(name, code string) (*models.Country, error) {
	country := models.Country{Name: name, Code: code}
	if err := r.db.Where("name = ? AND code = ?", name, code).FirstOrCreate(&country).Error; err != nil {
		return nil, err
	}
	return &country, nil
}

// CityRepository handles data access operations for cities
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository creates a new repository for city data
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// CityFilter narrows CountryCities results
type CityFilter struct {
	Active *bool
	Search string
}

// CountryCities retrieves the cities of one country ordered by id,
// optionally filtered by the active flag and a name fragment
func (r *CityRepository) CountryCities(countryID uint, filter CityFilter) ([]models.City, error) {
	var cities []models.City

	query := r.db.Where("country_id = ?", countryID).Order("id")
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filter.Search+"%")
	}

	if err := query.Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// FindInCountry retrieves one city scoped to a country; returns nil when absent
func (r *CityRepository) FindInCountry(countryID, cityID uint) (*models.City, error) {
	var city models.City
	err := r.db.Where("country_id = ?", countryID).First(&city, cityID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

// FindByID retrieves a city by its ID; returns nil when absent
func (r *CityRepository) FindByID(id uint) (*models.City, error) {
	var city models.City
	if err := r.db.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &city, nil
}

// ActiveCities retrieves all cities with at least one subscriber
func (r *CityRepository) ActiveCities() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Where("active = ?", true).Order("id").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// AllCities retrieves every city regardless of the active flag
func (r *CityRepository) AllCities() ([]models.City, error) {
	var cities []models.City
	if err := r.db.Order("id").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// Create persists a new city
func (r *CityRepository) Create(city *models.City) error {
	return r.db.Create(city).Error
}

// SetActive updates a city's active flag
func (r *CityRepository) SetActive(city *models.City, active bool) error {
	city.Active = active
	return r.db.Model(city).Update("active", active).Error
}

// DeleteAll removes every city from the database
func (r *CityRepository) DeleteAll() error {
	return r.db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.City{}).Error
}
