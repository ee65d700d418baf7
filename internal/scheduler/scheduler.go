package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/i474232898/weather-dashboard/internal/dashboard"
)

// Scheduler periodically re-fetches the displayed location so the
// dashboard does not go stale between user actions.
type Scheduler struct {
	scheduler *gocron.Scheduler
	dash      *dashboard.Dashboard
	interval  time.Duration
}

// New creates a new Scheduler. An interval of zero disables it.
func New(dash *dashboard.Dashboard, interval time.Duration) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		dash:      dash,
		interval:  interval,
	}
}

// Start schedules the periodic refresh and starts the underlying
// scheduler. Refresh failures follow the dashboard's failure policy:
// displayed data stays, the error slot is set, and we try again next
// tick.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("scheduler: auto-refresh disabled")
		return nil
	}

	// gocron takes the duration as-is, so sub-minute intervals are
	// honored rather than truncated.
	_, err := s.scheduler.Every(s.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.dash.Refresh(ctx); err != nil {
			log.Printf("scheduler: refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
