// Package models defines data structures used throughout the application
package models

import (
	"time"
)

// Frequencies is the set of allowed subscription intervals in hours.
var Frequencies = []int{1, 3, 6, 12, 24}

// IsValidFrequency reports whether n is an allowed subscription interval.
func IsValidFrequency(n int) bool {
	for _, f := range Frequencies {
		if n == f {
			return true
		}
	}
	return false
}

// Country represents a country owning a set of cities
type Country struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	Name   string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Code   string `json:"code" gorm:"size:2;uniqueIndex;not null"`
	Cities []City `json:"-" gorm:"foreignKey:CountryID;constraint:OnDelete:CASCADE"`
}

// City represents a city weather reports can be subscribed to.
// Active is true iff at least one subscription currently references the city.
type City struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"size:100;index;not null"`
	Lat       float64 `json:"lat" gorm:"not null"`
	Lon       float64 `json:"lon" gorm:"not null"`
	Active    bool    `json:"active" gorm:"default:false"`
	CountryID uint    `json:"country_id" gorm:"index;not null"`
	Country   Country `json:"-" gorm:"foreignKey:CountryID"`
}

// User represents a registered account
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:150;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Cities []City `json:"-" gorm:"many2many:subscriptions;"`
}

// Subscription ties a user to a city at a delivery frequency in hours.
// A user may hold at most one subscription per city.
type Subscription struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	UserID    uint `json:"-" gorm:"uniqueIndex:idx_user_city;not null"`
	CityID    uint `json:"city" gorm:"uniqueIndex:idx_user_city;not null"`
	Frequency int  `json:"frequency" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	City City `json:"-" gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}

// CurrentWeather is an immutable forecast snapshot captured at fetch time.
// Rows are only created by the ingestion pipeline; the latest snapshot for a
// city is the one with the greatest DateTime.
type CurrentWeather struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	WeatherStatus      string    `json:"weather_status" gorm:"size:20;not null"`
	WeatherDescription string    `json:"weather_description" gorm:"size:100;not null"`
	Temp               float64   `json:"temp" gorm:"not null"`
	FeelsLike          float64   `json:"feels_like" gorm:"not null"`
	Pressure           int       `json:"pressure" gorm:"not null"`
	Humidity           int       `json:"humidity" gorm:"not null"`
	WindSpeed          int       `json:"wind_speed" gorm:"not null"`
	DateTime           time.Time `json:"date_time" gorm:"index;not null"`
	CityID             uint      `json:"-" gorm:"index;not null"`
	City               City      `json:"-" gorm:"foreignKey:CityID;constraint:OnDelete:CASCADE"`
}

// WeatherReport represents normalized current weather data returned by a provider
type WeatherReport struct {
	Status      string  `json:"status"`
	Description string  `json:"description"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Pressure    int     `json:"pressure"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	UnixTime    int64   `json:"unix_time"`
}

// ForecastList groups the richer onecall provider response
type ForecastList struct {
	Hourly []WeatherReport `json:"hourly_forecasts"`
	Daily  []WeatherReport `json:"daily_forecasts"`
}

// RegistrationRequest represents data required to create an account
type RegistrationRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

// LoginRequest represents credentials for the token endpoint
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token to exchange for a new access token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// TokenPair holds an issued access/refresh token pair
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegistrationResponse is returned on successful registration
type RegistrationResponse struct {
	Token    TokenPair `json:"token"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

// SubscriptionRequest represents data required to create a subscription
type SubscriptionRequest struct {
	City      uint `json:"city" binding:"required"`
	Frequency int  `json:"frequency" binding:"required"`
}

// SubscriptionUpdateRequest allows changing the frequency of a subscription
type SubscriptionUpdateRequest struct {
	Frequency int `json:"frequency" binding:"required"`
}

// SubscriptionResponse is the API representation of a subscription,
// with the user resolved to a display name
type SubscriptionResponse struct {
	ID        uint   `json:"id"`
	User      string `json:"user"`
	City      uint   `json:"city"`
	Frequency int    `json:"frequency"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
