package scheduler

import (
	"context"
	"fmt"
	"time"

	"clothing_market/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Scheduler runs background jobs on cron schedules
type Scheduler struct {
	cron   *cron.Cron
	logger *logrus.Logger
}

// New creates a Scheduler. Panicking jobs are recovered and overlapping runs skipped.
func New(logger *logrus.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(logger)
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
		logger: logger,
	}
}

// AddReportJob delivers an activity report covering the last window on every tick of the cron schedule
func (s *Scheduler) AddReportJob(spec string, reports service.ReportService, window, timeout time.Duration) error {
	if _, err := s.cron.AddFunc(spec, s.reportJob(reports, window, timeout)); err != nil {
		return fmt.Errorf("invalid report schedule %q: %w", spec, err)
	}
	s.logger.WithField("schedule", spec).Info("Activity report scheduled")
	return nil
}

func (s *Scheduler) reportJob(reports service.ReportService, window, timeout time.Duration) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := reports.Deliver(ctx, window); err != nil {
			s.logger.WithError(err).Error("Activity report failed")
			return
		}
		s.logger.Info("Activity report delivered")
	}
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for running jobs until ctx is done
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stopped before running jobs finished")
	}
}
