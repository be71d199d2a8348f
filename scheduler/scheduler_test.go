package scheduler

import (
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherreminder.app/models"
)

type MockWeatherService struct {
	mock.Mock
}

func (m *MockWeatherService) FillCityWeather(city *models.City) error {
	args := m.Called(city)
	return args.Error(0)
}

func (m *MockWeatherService) RefreshActiveCities() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWeatherService) RefreshAllCities() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockWeatherService) GetForecast(city *models.City) (*models.ForecastList, error) {
	args := m.Called(city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ForecastList), args.Error(1)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) SendUsersWeatherForecast(frequency int) error {
	args := m.Called(frequency)
	return args.Error(0)
}

func TestRegister(t *testing.T) {
	weatherService := new(MockWeatherService)
	notificationService := new(MockNotificationService)
	scheduler := NewScheduler(weatherService, notificationService)

	require.NoError(t, scheduler.Register())

	// one refresh job plus one mailer job per frequency tier
	assert.Len(t, scheduler.Entries(), 1+len(models.Frequencies))
}

func TestMailerSchedulesCoverAllFrequencies(t *testing.T) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

	for _, frequency := range models.Frequencies {
		spec, ok := mailerSchedules[frequency]
		require.True(t, ok, "no schedule for frequency %d", frequency)

		_, err := parser.Parse(spec)
		assert.NoError(t, err, "invalid cron spec for frequency %d", frequency)
	}

	assert.Len(t, mailerSchedules, len(models.Frequencies))

	_, err := parser.Parse(refreshSchedule)
	assert.NoError(t, err)
}

func TestJobsDelegateToServices(t *testing.T) {
	weatherService := new(MockWeatherService)
	notificationService := new(MockNotificationService)
	scheduler := NewScheduler(weatherService, notificationService)

	weatherService.On("RefreshActiveCities").Return(nil)
	notificationService.On("SendUsersWeatherForecast", 3).Return(nil)

	scheduler.refreshActiveCities()
	scheduler.dispatchForecasts(3)

	weatherService.AssertExpectations(t)
	notificationService.AssertExpectations(t)
}

func TestJobErrorsAreSwallowed(t *testing.T) {
	weatherService := new(MockWeatherService)
	notificationService := new(MockNotificationService)
	scheduler := NewScheduler(weatherService, notificationService)

	weatherService.On("RefreshActiveCities").Return(assert.AnError)
	notificationService.On("SendUsersWeatherForecast", 1).Return(assert.AnError)

	// failing runs only log; the scheduler itself never panics
	assert.NotPanics(t, func() {
		scheduler.refreshActiveCities()
		scheduler.dispatchForecasts(1)
	})
}

func TestStartStop(t *testing.T) {
	weatherService := new(MockWeatherService)
	notificationService := new(MockNotificationService)
	scheduler := NewScheduler(weatherService, notificationService)

	require.NoError(t, scheduler.Register())

	scheduler.Start()
	scheduler.Stop()
}
