package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherreminder.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Database  DatabaseConfig  `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Email     EmailConfig     `split_words:"true"`
	Auth      AuthConfig      `split_words:"true"`
	Cache     CacheConfig     `split_words:"true"`
	Scheduler SchedulerConfig `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"weatherreminder"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted database connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// WeatherConfig contains settings for the weather provider
type WeatherConfig struct {
	APIKey     string `envconfig:"OPENWEATHERMAP_KEY" required:"true"`
	CurrentURL string `envconfig:"OPENWEATHERMAP_CURRENT_URL" default:"https://api.openweathermap.org/data/2.5/weather"`
	OnecallURL string `envconfig:"OPENWEATHERMAP_ONECALL_URL" default:"https://api.openweathermap.org/data/2.5/onecall"`
}

// EmailConfig contains email server and sending settings
type EmailConfig struct {
	SMTPHost     string `envconfig:"EMAIL_SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"EMAIL_SMTP_PORT" default:"587"`
	SMTPUsername string `envconfig:"EMAIL_SMTP_USERNAME" required:"true"`
	SMTPPassword string `envconfig:"EMAIL_SMTP_PASSWORD" required:"true"`
	FromName     string `envconfig:"EMAIL_FROM_NAME" default:"Weather Reminder"`
	FromAddress  string `envconfig:"EMAIL_FROM_ADDRESS" default:"no-reply@weatherreminder.app"`
}

// AuthConfig contains JWT issuance settings
type AuthConfig struct {
	JWTSecret        string `envconfig:"JWT_SECRET" required:"true"`
	AccessTTLMinutes int    `envconfig:"JWT_ACCESS_TTL_MINUTES" default:"60"`
	RefreshTTLHours  int    `envconfig:"JWT_REFRESH_TTL_HOURS" default:"24"`
	Issuer           string `envconfig:"JWT_ISSUER" default:"weatherreminder"`
}

// CacheConfig contains settings for the optional weather response cache
type CacheConfig struct {
	Type          string `envconfig:"CACHE_TYPE" default:"memory"` // "memory", "redis" or "none"
	TTLMinutes    int    `envconfig:"CACHE_TTL_MINUTES" default:"10"`
	RedisAddr     string `envconfig:"CACHE_REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"CACHE_REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"CACHE_REDIS_DB" default:"0"`

	// Redis connection timeouts, in seconds
	RedisDialTimeout  int `envconfig:"CACHE_REDIS_DIAL_TIMEOUT" default:"5"`
	RedisReadTimeout  int `envconfig:"CACHE_REDIS_READ_TIMEOUT" default:"3"`
	RedisWriteTimeout int `envconfig:"CACHE_REDIS_WRITE_TIMEOUT" default:"3"`
}

// SchedulerConfig contains settings for the background job scheduler
type SchedulerConfig struct {
	Enabled bool `envconfig:"SCHEDULER_ENABLED" default:"true"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Email.Validate(); err != nil {
		return err
	}
	if err := c.Auth.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > 65535 {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	if err := d.ValidateSSLMode(); err != nil {
		return err
	}
	return nil
}

// Validate checks weather provider configuration
func (w *WeatherConfig) Validate() error {
	if w.APIKey == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_KEY is required", nil)
	}
	for name, url := range map[string]string{
		"OPENWEATHERMAP_CURRENT_URL": w.CurrentURL,
		"OPENWEATHERMAP_ONECALL_URL": w.OnecallURL,
	} {
		if url == "" {
			return errors.NewConfigurationError(name+" cannot be empty", nil)
		}
		if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
			return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
		}
	}
	return nil
}

// Validate checks email configuration
func (e *EmailConfig) Validate() error {
	if e.SMTPHost == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_HOST cannot be empty", nil)
	}
	if e.SMTPPort < 1 || e.SMTPPort > 65535 {
		return errors.NewConfigurationError("EMAIL_SMTP_PORT must be between 1 and 65535", nil)
	}
	if e.SMTPUsername == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_USERNAME is required", nil)
	}
	if e.SMTPPassword == "" {
		return errors.NewConfigurationError("EMAIL_SMTP_PASSWORD is required", nil)
	}
	if e.FromName == "" {
		return errors.NewConfigurationError("EMAIL_FROM_NAME cannot be empty", nil)
	}
	if e.FromAddress == "" {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS cannot be empty", nil)
	}
	if !strings.Contains(e.FromAddress, "@") {
		return errors.NewConfigurationError("EMAIL_FROM_ADDRESS must be a valid email address", nil)
	}
	return nil
}

// Validate checks auth configuration
func (a *AuthConfig) Validate() error {
	if a.JWTSecret == "" {
		return errors.NewConfigurationError("JWT_SECRET is required", nil)
	}
	if len(a.JWTSecret) < 16 {
		return errors.NewConfigurationError("JWT_SECRET must be at least 16 characters", nil)
	}
	if a.AccessTTLMinutes < 1 {
		return errors.NewConfigurationError("JWT_ACCESS_TTL_MINUTES must be at least 1", nil)
	}
	if a.RefreshTTLHours < 1 {
		return errors.NewConfigurationError("JWT_REFRESH_TTL_HOURS must be at least 1", nil)
	}
	return nil
}

// Validate checks cache configuration
func (c *CacheConfig) Validate() error {
	switch c.Type {
	case "memory", "redis", "none":
	default:
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis, none", nil)
	}
	if c.TTLMinutes < 1 {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be at least 1", nil)
	}
	if c.Type == "redis" {
		if c.RedisAddr == "" {
			return errors.NewConfigurationError("CACHE_REDIS_ADDR cannot be empty", nil)
		}
		if c.RedisDialTimeout < 1 {
			return errors.NewConfigurationError("CACHE_REDIS_DIAL_TIMEOUT must be at least 1", nil)
		}
		if c.RedisReadTimeout < 1 {
			return errors.NewConfigurationError("CACHE_REDIS_READ_TIMEOUT must be at least 1", nil)
		}
		if c.RedisWriteTimeout < 1 {
			return errors.NewConfigurationError("CACHE_REDIS_WRITE_TIMEOUT must be at least 1", nil)
		}
	}
	return nil
}
