// Package service holds the gateway's credential services and the
// background upkeep of its in-memory state.
package service

import (
	"log/slog"
	"time"
)

// Sweeper drops expired in-memory state and reports how much it removed.
type Sweeper func() int

// HousekeepingService periodically sweeps expired cache entries and idle
// rate windows so memory stays bounded by live traffic.
type HousekeepingService struct {
	Sweepers map[string]Sweeper
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 10 minutes.
func NewHousekeepingService(sweepers map[string]Sweeper, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	return &HousekeepingService{
		Sweepers: sweepers,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, waiting for an in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stopCh:
			return
		}
	}
}

// Sweep runs every sweeper once and returns the total removed.
func (s *HousekeepingService) Sweep() int {
	total := 0
	for name, sweep := range s.Sweepers {
		n := sweep()
		if n > 0 {
			s.Logger.Debug("swept expired entries", "store", name, "removed", n)
		}
		total += n
	}
	s.Logger.Debug("housekeeping sweep completed", "removed", total)
	return total
}
