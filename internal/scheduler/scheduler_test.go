package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/geo"
	"github.com/i474232898/weather-dashboard/internal/locations"
	"github.com/i474232898/weather-dashboard/internal/weatherapi"
)

type stubWeather struct{}

func (stubWeather) Current(_ context.Context, query string) (*weatherapi.Snapshot, error) {
	snap := &weatherapi.Snapshot{}
	snap.Location.Name = query
	return snap, nil
}

func (stubWeather) Forecast(_ context.Context, _ string, days int) ([]weatherapi.ForecastDay, error) {
	return make([]weatherapi.ForecastDay, days), nil
}

func (stubWeather) HistoryRange(_ context.Context, _ string, days int) ([]weatherapi.HistoryDay, error) {
	return make([]weatherapi.HistoryDay, days), nil
}

type stubLocator struct{}

func (stubLocator) Resolve(context.Context) (geo.Coordinates, error) {
	return geo.Coordinates{}, geo.ErrorFromCode(2)
}

func newTestScheduler(interval time.Duration) *Scheduler {
	dash := dashboard.New(stubWeather{}, stubLocator{}, locations.NewStore(locations.NewMemoryBackend()), "Colombo")
	return New(dash, interval)
}

// TestStartHonorsSubMinuteInterval verifies that a sub-minute refresh
// interval is scheduled as given instead of being coerced upward.
func TestStartHonorsSubMinuteInterval(t *testing.T) {
	s := newTestScheduler(30 * time.Second)
	defer s.Stop()

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	jobs := s.scheduler.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 scheduled job, got %d", len(jobs))
	}
}

func TestStartZeroIntervalDisables(t *testing.T) {
	s := newTestScheduler(0)
	defer s.Stop()

	if err := s.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if jobs := s.scheduler.Jobs(); len(jobs) != 0 {
		t.Fatalf("expected no scheduled jobs, got %d", len(jobs))
	}
}
