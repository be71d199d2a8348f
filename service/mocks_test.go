package service

import (
	"github.com/stretchr/testify/mock"
	"weatherreminder.app/models"
	"weatherreminder.app/repository"
)

type MockCountryRepository struct {
	mock.Mock
}

func (m *MockCountryRepository) Search(name string) ([]models.Country, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Country), args.Error(1)
}

func (m *MockCountryRepository) FindByID(id uint) (*models.Country, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

func (m *MockCountryRepository) FindOrCreate(name, code string) (*models.Country, error) {
	args := m.Called(name, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Country), args.Error(1)
}

type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) CountryCities(countryID uint, filter repository.CityFilter) ([]models.City, error) {
	args := m.Called(countryID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *MockCityRepository) FindInCountry(countryID, cityID uint) (*models.City, error) {
	args := m.Called(countryID, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

func (m *MockCityRepository) FindByID(id uint) (*models.City, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

func (m *MockCityRepository) ActiveCities() ([]models.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *MockCityRepository) AllCities() ([]models.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.City), args.Error(1)
}

func (m *MockCityRepository) Create(city *models.City) error {
	args := m.Called(city)
	return args.Error(0)
}

func (m *MockCityRepository) SetActive(city *models.City, active bool) error {
	args := m.Called(city, active)
	return args.Error(0)
}

func (m *MockCityRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) WithSubscriptionsAndCities(frequency int) ([]models.User, error) {
	args := m.Called(frequency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Create(subscription *models.Subscription) error {
	args := m.Called(subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Update(subscription *models.Subscription) error {
	args := m.Called(subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) Delete(subscription *models.Subscription) error {
	args := m.Called(subscription)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) FindOwned(userID, id uint) (*models.Subscription, error) {
	args := m.Called(userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) FindByUserAndCity(userID, cityID uint) (*models.Subscription, error) {
	args := m.Called(userID, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) UserSubscriptions(userID uint) ([]models.Subscription, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) CountByCity(cityID uint) (int64, error) {
	args := m.Called(cityID)
	return args.Get(0).(int64), args.Error(1)
}

type MockForecastRepository struct {
	mock.Mock
}

func (m *MockForecastRepository) Create(forecast *models.CurrentWeather) error {
	args := m.Called(forecast)
	return args.Error(0)
}

func (m *MockForecastRepository) LatestForCity(cityID uint) (*models.CurrentWeather, error) {
	args := m.Called(cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CurrentWeather), args.Error(1)
}

func (m *MockForecastRepository) CountForCity(cityID uint) (int64, error) {
	args := m.Called(cityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockForecastRepository) DeleteAll() error {
	args := m.Called()
	return args.Error(0)
}

type MockWeatherProvider struct {
	mock.Mock
}

func (m *MockWeatherProvider) GetCurrentWeather(lat, lon float64) (*models.WeatherReport, error) {
	args := m.Called(lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WeatherReport), args.Error(1)
}

func (m *MockWeatherProvider) GetForecast(lat, lon float64) (*models.ForecastList, error) {
	args := m.Called(lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForecastList), args.Error(1)
}

type MockEmailProvider struct {
	mock.Mock
}

func (m *MockEmailProvider) SendEmail(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendForecastEmail(to, cityName string, forecast *models.CurrentWeather) error {
	args := m.Called(to, cityName, forecast)
	return args.Error(0)
}
