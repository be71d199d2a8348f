package service

import (
	"weatherreminder.app/errors"
	"weatherreminder.app/models"
	"weatherreminder.app/repository"
)

// LocationService serves country and city browsing
type LocationService struct {
	countryRepo CountryRepositoryInterface
	cityRepo    CityRepositoryInterface
}

// NewLocationService creates a new location browsing service
func NewLocationService(
	countryRepo CountryRepositoryInterface,
	cityRepo CityRepositoryInterface,
) *LocationService {
	return &LocationService{
		countryRepo: countryRepo,
		cityRepo:    cityRepo,
	}
}

// ListCountries retrieves countries filtered by a case-insensitive name fragment
func (s *LocationService) ListCountries(search string) ([]models.Country, error) {
	countries, err := s.countryRepo.Search(search)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list countries", err)
	}
	return countries, nil
}

// GetCountry retrieves one country by ID
func (s *LocationService) GetCountry(id uint) (*models.Country, error) {
	country, err := s.countryRepo.FindByID(id)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find country", err)
	}
	if country == nil {
		return nil, errors.NewNotFoundError("country not found")
	}
	return country, nil
}

// ListCities retrieves the cities of one country, optionally filtered by the
// active flag and a name fragment
func (s *LocationService) ListCities(countryID uint, filter repository.CityFilter) ([]models.City, error) {
	if _, err := s.GetCountry(countryID); err != nil {
		return nil, err
	}

	cities, err := s.cityRepo.CountryCities(countryID, filter)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to list cities", err)
	}
	return cities, nil
}

// GetCity retrieves one city scoped to a country
func (s *LocationService) GetCity(countryID, cityID uint) (*models.City, error) {
	city, err := s.cityRepo.FindInCountry(countryID, cityID)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to find city", err)
	}
	if city == nil {
		return nil, errors.NewNotFoundError("city not found")
	}
	return city, nil
}
