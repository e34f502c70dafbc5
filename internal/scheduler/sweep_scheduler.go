package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"workflow-data-be/internal/pkg/logger"
	"workflow-data-be/internal/service"
)

// SweepScheduler runs the retention sweep on a cron schedule. The schedule
// uses six fields (seconds first), e.g. "0 0 2 * * *" for daily at 02:00.
type SweepScheduler struct {
	cron       *cron.Cron
	retention  service.IRetentionService
	schedule   string
	cutoffDays int
	log        logger.ILogger
}

func NewSweepScheduler(retention service.IRetentionService, schedule string, cutoffDays int, log logger.ILogger) *SweepScheduler {
	return &SweepScheduler{
		cron:       cron.New(cron.WithSeconds()),
		retention:  retention,
		schedule:   schedule,
		cutoffDays: cutoffDays,
		log:        log,
	}
}

func (s *SweepScheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.run)
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("scheduler", "retention sweep scheduled", map[string]interface{}{
		"schedule":    s.schedule,
		"cutoff_days": s.cutoffDays,
	})
	return nil
}

func (s *SweepScheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		s.log.Warn("scheduler", "timed out waiting for running sweep", nil)
	}
}

func (s *SweepScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := s.retention.Sweep(ctx, s.cutoffDays)
	if err != nil {
		s.log.Error("scheduler", "scheduled sweep failed", map[string]interface{}{"error": err.Error()})
		return
	}
	s.log.Info("scheduler", "scheduled sweep completed", map[string]interface{}{
		"deleted": result.Deleted,
		"failed":  result.Failed,
	})
}
