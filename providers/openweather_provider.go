package providers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"weatherreminder.app/config"
	"weatherreminder.app/errors"
	"weatherreminder.app/models"
)

// OpenWeatherMapProvider implements WeatherProvider for api.openweathermap.org
type OpenWeatherMapProvider struct {
	apiKey     string
	currentURL string
	onecallURL string
	httpClient *http.Client
}

type owmCondition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

type owmCurrentResponse struct {
	Weather []owmCondition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Dt int64 `json:"dt"`
}

type owmHourlyEntry struct {
	Weather   []owmCondition `json:"weather"`
	Temp      float64        `json:"temp"`
	FeelsLike float64        `json:"feels_like"`
	Pressure  int            `json:"pressure"`
	Humidity  int            `json:"humidity"`
	WindSpeed float64        `json:"wind_speed"`
	Dt        int64          `json:"dt"`
}

type owmDailyEntry struct {
	Weather []owmCondition `json:"weather"`
	Temp    struct {
		Day float64 `json:"day"`
	} `json:"temp"`
	FeelsLike struct {
		Day float64 `json:"day"`
	} `json:"feels_like"`
	Pressure  int     `json:"pressure"`
	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Dt        int64   `json:"dt"`
}

type owmOnecallResponse struct {
	Hourly []owmHourlyEntry `json:"hourly"`
	Daily  []owmDailyEntry  `json:"daily"`
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(config *config.WeatherConfig) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:     config.APIKey,
		currentURL: config.CurrentURL,
		onecallURL: config.OnecallURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetCurrentWeather retrieves the current weather at the given coordinates
func (p *OpenWeatherMapProvider) GetCurrentWeather(lat, lon float64) (*models.WeatherReport, error) {
	params := url.Values{}
	params.Set("units", "metric")
	params.Set("appid", p.apiKey)
	params.Set("lat", fmt.Sprintf("%g", lat))
	params.Set("lon", fmt.Sprintf("%g", lon))

	var apiResponse owmCurrentResponse
	if err := p.getJSON(p.currentURL, params, &apiResponse); err != nil {
		return nil, err
	}

	if len(apiResponse.Weather) == 0 {
		return nil, errors.NewExternalAPIError("openweathermap: response missing weather conditions", nil)
	}

	return &models.WeatherReport{
		Status:      apiResponse.Weather[0].Main,
		Description: apiResponse.Weather[0].Description,
		Temp:        apiResponse.Main.Temp,
		FeelsLike:   apiResponse.Main.FeelsLike,
		Pressure:    apiResponse.Main.Pressure,
		Humidity:    apiResponse.Main.Humidity,
		WindSpeed:   apiResponse.Wind.Speed,
		UnixTime:    apiResponse.Dt,
	}, nil
}

// GetForecast retrieves hourly and daily forecast lists via the onecall endpoint
func (p *OpenWeatherMapProvider) GetForecast(lat, lon float64) (*models.ForecastList, error) {
	params := url.Values{}
	params.Set("units", "metric")
	params.Set("appid", p.apiKey)
	params.Set("exclude", "current,minutely")
	params.Set("lat", fmt.Sprintf("%g", lat))
	params.Set("lon", fmt.Sprintf("%g", lon))

	var apiResponse owmOnecallResponse
	if err := p.getJSON(p.onecallURL, params, &apiResponse); err != nil {
		return nil, err
	}

	forecast := &models.ForecastList{
		Hourly: make([]models.WeatherReport, 0, len(apiResponse.Hourly)),
		Daily:  make([]models.WeatherReport, 0, len(apiResponse.Daily)),
	}

	for _, entry := range apiResponse.Hourly {
		forecast.Hourly = append(forecast.Hourly, models.WeatherReport{
			Status:      conditionMain(entry.Weather),
			Description: conditionDescription(entry.Weather),
			Temp:        entry.Temp,
			FeelsLike:   entry.FeelsLike,
			Pressure:    entry.Pressure,
			Humidity:    entry.Humidity,
			WindSpeed:   entry.WindSpeed,
			UnixTime:    entry.Dt,
		})
	}

	for _, entry := range apiResponse.Daily {
		forecast.Daily = append(forecast.Daily, models.WeatherReport{
			Status:      conditionMain(entry.Weather),
			Description: conditionDescription(entry.Weather),
			Temp:        entry.Temp.Day,
			FeelsLike:   entry.FeelsLike.Day,
			Pressure:    entry.Pressure,
			Humidity:    entry.Humidity,
			WindSpeed:   entry.WindSpeed,
			UnixTime:    entry.Dt,
		})
	}

	return forecast, nil
}

func (p *OpenWeatherMapProvider) getJSON(baseURL string, params url.Values, out interface{}) error {
	resp, err := p.httpClient.Get(baseURL + "?" + params.Encode())
	if err != nil {
		return errors.NewExternalAPIError("openweathermap request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return p.handleHTTPError(resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("decode openweathermap response", err)
	}
	return nil
}

func (p *OpenWeatherMapProvider) handleHTTPError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return errors.NewExternalAPIError("openweathermap: invalid API key", nil)
	case http.StatusNotFound:
		return errors.NewNotFoundError("openweathermap: location not found")
	case http.StatusTooManyRequests:
		return errors.NewExternalAPIError("openweathermap: rate limit exceeded", nil)
	default:
		return errors.NewExternalAPIError(fmt.Sprintf("openweathermap: HTTP %d error", statusCode), nil)
	}
}

func conditionMain(conditions []owmCondition) string {
	if len(conditions) == 0 {
		return ""
	}
	return conditions[0].Main
}

func conditionDescription(conditions []owmCondition) string {
	if len(conditions) == 0 {
		return "No description"
	}
	return conditions[0].Description
}
