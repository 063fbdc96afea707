package backup

import (
	"log/slog"
	"time"
)

// Scheduler runs a backup immediately and then every Interval, pruning to
// Keep after each run
type Scheduler struct {
	Manager  *Manager
	Interval time.Duration
	Keep     int
	Logger   *slog.Logger

	done     chan struct{}
	stopChan chan struct{}
}

// NewScheduler creates a daily scheduler keeping DefaultKeep backups
func NewScheduler(manager *Manager, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		Manager:  manager,
		Interval: 24 * time.Hour,
		Keep:     DefaultKeep,
		Logger:   logger,
		done:     make(chan struct{}),
		stopChan: make(chan struct{}, 1),
	}
}

// Start begins the backup loop in a goroutine. The returned channel is
// closed once the loop has stopped.
func (s *Scheduler) Start() <-chan struct{} {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.Interval)
		defer ticker.Stop()

		s.runBackup()

		for {
			select {
			case <-s.stopChan:
				return
			case <-ticker.C:
				s.runBackup()
			}
		}
	}()

	return s.done
}

// Stop asks the loop to exit
func (s *Scheduler) Stop() {
	select {
	case s.stopChan <- struct{}{}:
	default:
	}
}

func (s *Scheduler) runBackup() {
	meta, err := s.Manager.Create("scheduled")
	if err != nil {
		s.Logger.Error("scheduled backup failed", "error", err)
		return
	}
	s.Logger.Info("backup created", "name", meta.Name, "icons", meta.Icons)

	removed, err := s.Manager.Prune(s.Keep)
	if err != nil {
		s.Logger.Error("backup prune failed", "error", err)
		return
	}
	if removed > 0 {
		s.Logger.Info("old backups pruned", "removed", removed)
	}
}
