package media

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"io.winapps.travelgallery/internal/metrics"
)

// Sweeper periodically releases pending uploads whose form was never submitted.
type Sweeper struct {
	registry *Registry
	maxAge   time.Duration
	logger   *zap.SugaredLogger
	cron     *cron.Cron
}

// NewSweeper schedules a sweep of registry on schedule (standard cron spec or
// descriptor such as "@every 5m").
func NewSweeper(registry *Registry, schedule string, maxAge time.Duration, logger *zap.SugaredLogger) (*Sweeper, error) {
	s := &Sweeper{
		registry: registry,
		maxAge:   maxAge,
		logger:   logger,
		cron:     cron.New(cron.WithLocation(time.UTC)),
	}

	if _, err := s.cron.AddFunc(schedule, s.Sweep); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	return s, nil
}

// Start runs the schedule in the background.
func (s *Sweeper) Start() {
	s.cron.Start()
}

// Stop halts the schedule and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	<-s.cron.Stop().Done()
}

// Sweep releases stale pending uploads once.
func (s *Sweeper) Sweep() {
	n := s.registry.SweepPending(s.maxAge)
	if n == 0 {
		return
	}
	metrics.MediaPendingReleasedTotal.Add(float64(n))
	if s.logger != nil {
		s.logger.Infow("released abandoned media uploads", "count", n, "max_age", s.maxAge.String())
	}
}
