package providers

import (
	"fmt"
	"log/slog"
	"time"

	"weatherreminder.app/metrics"
	"weatherreminder.app/models"
)

// WeatherCacheProxy caches current-weather responses in front of a real
// provider. Forecast lookups are not cached; they bypass straight to the
// underlying provider.
type WeatherCacheProxy struct {
	realProvider WeatherProvider
	cache        Cache
	cacheTTL     time.Duration
	backend      string
}

// NewWeatherCacheProxy creates a caching decorator around a weather provider
func NewWeatherCacheProxy(realProvider WeatherProvider, cache Cache, cacheTTL time.Duration, backend string) WeatherProvider {
	return &WeatherCacheProxy{
		realProvider: realProvider,
		cache:        cache,
		cacheTTL:     cacheTTL,
		backend:      backend,
	}
}

// GetCurrentWeather serves from cache when possible
func (p *WeatherCacheProxy) GetCurrentWeather(lat, lon float64) (*models.WeatherReport, error) {
	cacheKey := p.generateCacheKey(lat, lon)

	if cachedReport, found := p.cache.Get(cacheKey); found {
		slog.Debug("weather cache hit", "lat", lat, "lon", lon)
		metrics.RecordCacheHit(p.backend)
		return cachedReport, nil
	}

	slog.Debug("weather cache miss", "lat", lat, "lon", lon)
	metrics.RecordCacheMiss(p.backend)

	report, err := p.realProvider.GetCurrentWeather(lat, lon)
	if err != nil {
		return nil, err
	}

	p.cache.Set(cacheKey, report, p.cacheTTL)

	return report, nil
}

// GetForecast delegates to the real provider
func (p *WeatherCacheProxy) GetForecast(lat, lon float64) (*models.ForecastList, error) {
	return p.realProvider.GetForecast(lat, lon)
}

func (p *WeatherCacheProxy) generateCacheKey(lat, lon float64) string {
	return fmt.Sprintf("weather:%.4f:%.4f", lat, lon)
}
