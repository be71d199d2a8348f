package service

import (
	"weatherreminder.app/models"
	"weatherreminder.app/repository"
)

// WeatherServiceInterface defines the forecast ingestion operations
type WeatherServiceInterface interface {
	FillCityWeather(city *models.City) error
	RefreshActiveCities() error
	RefreshAllCities() error
	GetForecast(city *models.City) (*models.ForecastList, error)
}

// NotificationServiceInterface defines the fan-out dispatch operation
type NotificationServiceInterface interface {
	SendUsersWeatherForecast(frequency int) error
}

// SubscriptionServiceInterface defines subscription management operations
type SubscriptionServiceInterface interface {
	Subscribe(user *models.User, req *models.SubscriptionRequest) (*models.SubscriptionResponse, error)
	List(user *models.User) ([]models.SubscriptionResponse, error)
	Get(user *models.User, id uint) (*models.SubscriptionResponse, error)
	UpdateFrequency(user *models.User, id uint, frequency int) (*models.SubscriptionResponse, error)
	Unsubscribe(user *models.User, id uint) error
}

// AuthServiceInterface defines registration and token operations
type AuthServiceInterface interface {
	Register(req *models.RegistrationRequest) (*models.RegistrationResponse, error)
	Login(req *models.LoginRequest) (*models.TokenPair, error)
	Refresh(refreshToken string) (string, error)
	Authenticate(accessToken string) (*models.User, error)
}

// LocationServiceInterface defines country and city browsing operations
type LocationServiceInterface interface {
	ListCountries(search string) ([]models.Country, error)
	GetCountry(id uint) (*models.Country, error)
	ListCities(countryID uint, filter repository.CityFilter) ([]models.City, error)
	GetCity(countryID, cityID uint) (*models.City, error)
}

// EmailServiceInterface defines the interface for email operations
type EmailServiceInterface interface {
	SendForecastEmail(to, cityName string, forecast *models.CurrentWeather) error
}

// CountryRepositoryInterface defines the interface for country data operations
type CountryRepositoryInterface interface {
	Search(name string) ([]models.Country, error)
	FindByID(id uint) (*models.Country, error)
	FindOrCreate(name, code string) (*models.Country, error)
}

// CityRepositoryInterface defines the interface for city data operations
type CityRepositoryInterface interface {
	CountryCities(countryID uint, filter repository.CityFilter) ([]models.City, error)
	FindInCountry(countryID, cityID uint) (*models.City, error)
	FindByID(id uint) (*models.City, error)
	ActiveCities() ([]models.City, error)
	AllCities() ([]models.City, error)
	Create(city *models.City) error
	SetActive(city *models.City, active bool) error
	DeleteAll() error
}

// UserRepositoryInterface defines the interface for user data operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	WithSubscriptionsAndCities(frequency int) ([]models.User, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription data operations
type SubscriptionRepositoryInterface interface {
	Create(subscription *models.Subscription) error
	Update(subscription *models.Subscription) error
	Delete(subscription *models.Subscription) error
	FindOwned(userID, id uint) (*models.Subscription, error)
	FindByUserAndCity(userID, cityID uint) (*models.Subscription, error)
	UserSubscriptions(userID uint) ([]models.Subscription, error)
	CountByCity(cityID uint) (int64, error)
}

// ForecastRepositoryInterface defines the interface for forecast snapshot operations
type ForecastRepositoryInterface interface {
	Create(forecast *models.CurrentWeather) error
	LatestForCity(cityID uint) (*models.CurrentWeather, error)
	CountForCity(cityID uint) (int64, error)
	DeleteAll() error
}

// Ensure implementations satisfy interfaces
var _ WeatherServiceInterface = (*WeatherService)(nil)
var _ NotificationServiceInterface = (*NotificationService)(nil)
var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)
var _ LocationServiceInterface = (*LocationService)(nil)
var _ EmailServiceInterface = (*EmailService)(nil)

var _ CountryRepositoryInterface = (*repository.CountryRepository)(nil)
var _ CityRepositoryInterface = (*repository.CityRepository)(nil)
var _ UserRepositoryInterface = (*repository.UserRepository)(nil)
var _ SubscriptionRepositoryInterface = (*repository.SubscriptionRepository)(nil)
var _ ForecastRepositoryInterface = (*repository.ForecastRepository)(nil)
