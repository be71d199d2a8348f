// Package app wires the application's dependencies together
package app

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	"weatherreminder.app/api"
	"weatherreminder.app/config"
	"weatherreminder.app/database"
	"weatherreminder.app/providers"
	"weatherreminder.app/providers/cache"
	"weatherreminder.app/repository"
	"weatherreminder.app/scheduler"
	"weatherreminder.app/service"
)

// Application represents the main application with all its dependencies
type Application struct {
	config    *config.Config
	db        *gorm.DB
	server    *api.Server
	scheduler *scheduler.Scheduler
	stopCache func()
}

// NewApplication creates and initializes a new application instance
func NewApplication() (*Application, error) {
	app := &Application{}

	if err := app.loadConfiguration(); err != nil {
		return nil, err
	}

	if err := app.initializeDatabase(); err != nil {
		return nil, err
	}

	if err := app.initializeServices(); err != nil {
		return nil, err
	}

	return app, nil
}

func (app *Application) loadConfiguration() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load application configuration: %w", err)
	}

	app.config = cfg
	slog.Info("configuration loaded")
	return nil
}

func (app *Application) initializeDatabase() error {
	db, err := database.InitDB(app.config.Database)
	if err != nil {
		return fmt.Errorf("initialize database connection: %w", err)
	}

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("run database migrations: %w", err)
	}

	app.db = db
	slog.Info("database initialized")
	return nil
}

func (app *Application) initializeServices() error {
	countryRepo := repository.NewCountryRepository(app.db)
	cityRepo := repository.NewCityRepository(app.db)
	userRepo := repository.NewUserRepository(app.db)
	subscriptionRepo := repository.NewSubscriptionRepository(app.db)
	forecastRepo := repository.NewForecastRepository(app.db)

	weatherProvider, err := app.createWeatherProvider()
	if err != nil {
		return fmt.Errorf("create weather provider: %w", err)
	}
	emailProvider := providers.NewSMTPEmailProvider(&app.config.Email)

	weatherService := service.NewWeatherService(weatherProvider, cityRepo, forecastRepo)
	emailService := service.NewEmailService(emailProvider)
	notificationService := service.NewNotificationService(userRepo, forecastRepo, emailService)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, cityRepo)
	authService := service.NewAuthService(userRepo, &app.config.Auth)
	locationService := service.NewLocationService(countryRepo, cityRepo)

	app.server = api.NewServer(app.config, authService, locationService, subscriptionService)
	app.scheduler = scheduler.NewScheduler(weatherService, notificationService)

	slog.Info("services initialized")
	return nil
}

// createWeatherProvider builds the weather provider, wrapped in a caching
// decorator when the cache is enabled
func (app *Application) createWeatherProvider() (providers.WeatherProvider, error) {
	provider := providers.NewOpenWeatherMapProvider(&app.config.Weather)

	cacheConfig := &app.config.Cache
	ttl := time.Duration(cacheConfig.TTLMinutes) * time.Minute

	switch cacheConfig.Type {
	case "none":
		return provider, nil
	case "memory":
		memoryCache := cache.NewMemoryCache()
		app.stopCache = memoryCache.Stop
		reportCache := cache.NewReportCache(memoryCache)
		return providers.NewWeatherCacheProxy(provider, reportCache, ttl, "memory"), nil
	case "redis":
		reportCache, err := cache.NewRedisCache(&cache.RedisCacheConfig{
			Addr:         cacheConfig.RedisAddr,
			Password:     cacheConfig.RedisPassword,
			DB:           cacheConfig.RedisDB,
			DialTimeout:  time.Duration(cacheConfig.RedisDialTimeout) * time.Second,
			ReadTimeout:  time.Duration(cacheConfig.RedisReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cacheConfig.RedisWriteTimeout) * time.Second,
		})
		if err != nil {
			return nil, err
		}
		return providers.NewWeatherCacheProxy(provider, reportCache, ttl, "redis"), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cacheConfig.Type)
	}
}

// Start starts the application
func (app *Application) Start() error {
	if app.config.Scheduler.Enabled {
		if err := app.scheduler.Register(); err != nil {
			return fmt.Errorf("register scheduled jobs: %w", err)
		}
		app.scheduler.Start()
	} else {
		slog.Info("scheduler disabled by configuration")
	}

	slog.Info("starting HTTP server", "port", app.config.Server.Port)
	return app.server.Start()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}

	if app.stopCache != nil {
		app.stopCache()
	}

	if app.db != nil {
		if err := database.CloseDB(app.db); err != nil {
			slog.Warn("error closing database", "error", err)
		}
	}

	slog.Info("application shutdown complete")
	return nil
}

// Config returns the application configuration
func (app *Application) Config() *config.Config {
	return app.config
}
