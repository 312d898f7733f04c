// filepath: internal/housekeeping/service.go
package housekeeping

import (
	"context"
	"solarapi/internal/logging"
	"sync"
	"time"
)

const (
	// DefaultCheckInterval is used when no interval is configured.
	DefaultCheckInterval = 1 * time.Hour
	// MinCheckInterval is the minimum time between checks to prevent busy-looping.
	MinCheckInterval = 1 * time.Minute
	// runTimeout bounds a single retention run.
	runTimeout = 30 * time.Second
)

// Service provides the background worker that prunes old cleaning requests.
type Service struct {
	Deps      Dependencies
	Retention time.Duration
	Interval  time.Duration

	now      func() time.Time
	timer    *time.Timer
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewService creates a new housekeeping service instance.
func NewService(deps Dependencies, retention, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	if interval < MinCheckInterval {
		interval = MinCheckInterval
	}
	return &Service{
		Deps:      deps,
		Retention: retention,
		Interval:  interval,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start kicks off the background housekeeping service.
func (s *Service) Start() {
	if s.Retention <= 0 {
		logging.Log.Info("Cleaning request retention disabled; housekeeping not started.")
		return
	}
	logging.Log.Infof("Starting background housekeeping service (retention %v).", s.Retention)
	s.timer = time.NewTimer(0) // Fire immediately on start
	s.doneCh = make(chan struct{})

	go func() {
		defer close(s.doneCh)
		for {
			select {
			case <-s.timer.C:
				s.runChecks()
				s.timer.Reset(s.Interval)
				logging.Log.Debugf("Next housekeeping check scheduled in %v.", s.Interval)
			case <-s.stopCh:
				s.timer.Stop()
				return
			}
		}
	}()
}

// Stop terminates the background housekeeping service and waits for a running
// check to finish. It is safe to call more than once.
func (s *Service) Stop() {
	s.stopOnce.Do(func() {
		logging.Log.Info("Stopping background housekeeping service.")
		close(s.stopCh)
	})
	if s.doneCh != nil {
		<-s.doneCh
	}
}

func (s *Service) runChecks() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	report, err := RunRetention(ctx, s.Deps, s.Retention, s.now())
	if err != nil {
		logging.Log.Errorf("Housekeeping run failed: %v", err)
		return
	}
	if report.RequestsDeleted > 0 {
		logging.Log.Info(report.Message)
	} else {
		logging.Log.Debug(report.Message)
	}
}
