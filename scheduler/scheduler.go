// Package scheduler registers the background jobs of the weather pipeline
package scheduler

import (
	"log/slog"

	"github.com/robfig/cron/v3"
	"weatherreminder.app/service"
)

// mailerSchedules maps each frequency tier in hours to its cron expression,
// mirroring the hourly fetch at minute 0 and mail dispatch at minute 5.
var mailerSchedules = map[int]string{
	1:  "5 * * * *",
	3:  "5 */3 * * *",
	6:  "5 */6 * * *",
	12: "5 */12 * * *",
	24: "5 0 * * *",
}

const refreshSchedule = "0 * * * *"

// Scheduler manages periodic weather refresh and mail dispatch jobs
type Scheduler struct {
	cron                *cron.Cron
	weatherService      service.WeatherServiceInterface
	notificationService service.NotificationServiceInterface
}

// NewScheduler creates a new scheduler over the given services
func NewScheduler(
	weatherService service.WeatherServiceInterface,
	notificationService service.NotificationServiceInterface,
) *Scheduler {
	return &Scheduler{
		cron:                cron.New(),
		weatherService:      weatherService,
		notificationService: notificationService,
	}
}

// Register adds all pipeline jobs to the cron table. Jobs run independently;
// a failing run is logged and retried at the next scheduled tick only.
func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(refreshSchedule, s.refreshActiveCities); err != nil {
		return err
	}

	for frequency, spec := range mailerSchedules {
		frequency := frequency
		if _, err := s.cron.AddFunc(spec, func() {
			s.dispatchForecasts(frequency)
		}); err != nil {
			return err
		}
	}

	return nil
}

// Start begins running the scheduled jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler; running jobs complete
func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("scheduler stopped")
}

// Entries exposes the registered cron entries for inspection
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) refreshActiveCities() {
	slog.Info("refreshing weather for active cities")
	if err := s.weatherService.RefreshActiveCities(); err != nil {
		slog.Error("weather refresh failed", "error", err)
	}
}

func (s *Scheduler) dispatchForecasts(frequency int) {
	slog.Info("dispatching forecast emails", "frequency", frequency)
	if err := s.notificationService.SendUsersWeatherForecast(frequency); err != nil {
		slog.Error("forecast dispatch failed", "frequency", frequency, "error", err)
	}
}
