package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs the hourly notification retention sweep.
type SchedulerService struct {
	cron          *cron.Cron
	notifications *NotificationService
	retention     time.Duration
}

// NewSchedulerService creates the scheduler. retention is how long read
// notifications are kept before the sweep removes them.
func NewSchedulerService(notifications *NotificationService, retention time.Duration) *SchedulerService {
	return &SchedulerService{
		cron:          cron.New(),
		notifications: notifications,
		retention:     retention,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *SchedulerService) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.sweepNotifications); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop stops the cron loop and waits for a running sweep to finish.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *SchedulerService) sweepNotifications() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-s.retention)
	purged, err := s.notifications.PurgeRead(ctx, cutoff)
	if err != nil {
		log.Printf("Notification retention sweep failed: %v", err)
		return
	}
	if purged > 0 {
		log.Printf("Notification retention sweep removed %d read notifications", purged)
	}
}
