// Package jobs runs background maintenance on a gocron scheduler.
package jobs

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrInvalidInterval = errors.New("job interval must be positive")

// Reconciler retries standings recomputes that failed during completion.
type Reconciler interface {
	ReconcileStale(ctx context.Context) (int, error)
}

// Scheduler wraps a gocron scheduler for app-wide jobs.
type Scheduler struct {
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

// New creates a scheduler whose jobs log panics instead of dying.
func New() (*Scheduler, error) {
	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Str("job_name", jobName).
						Interface("panic", recoverData).
						Msg("Scheduler job panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}
	return &Scheduler{scheduler: sched}, nil
}

// AddStandingsReconciler runs r every interval. A run still in progress
// when the next one is due pushes the next one back.
func (s *Scheduler) AddStandingsReconciler(ctx context.Context, r Reconciler, interval time.Duration) (gocron.Job, error) {
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}
	jobLogger := log.With().Str("job_name", "standings-reconcile").Dur("interval", interval).Logger()

	job, err := s.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ReconcileOnce(jobLogger.WithContext(ctx), r)
		}),
		gocron.WithName("standings-reconcile"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		jobLogger.Error().Err(err).Msg("Failed to register scheduler job")
		return nil, err
	}
	jobLogger.Info().Msg("Scheduler job registered")
	return job, nil
}

// ReconcileOnce is a single reconciler pass.
func ReconcileOnce(ctx context.Context, r Reconciler) {
	logger := log.Ctx(ctx)
	done, err := r.ReconcileStale(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("standings reconcile failed")
		return
	}
	if done > 0 {
		logger.Info().Int("tournaments", done).Msg("stale standings recomputed")
	}
}

// Start begins running scheduled jobs.
func (s *Scheduler) Start() {
	log.Info().Msg("Scheduler starting")
	s.scheduler.Start()
}

// Stop shuts down the scheduler and waits for running jobs.
func (s *Scheduler) Stop() error {
	s.stopOnce.Do(func() {
		log.Info().Msg("Scheduler stopping")
		s.stopErr = s.scheduler.Shutdown()
	})
	return s.stopErr
}
