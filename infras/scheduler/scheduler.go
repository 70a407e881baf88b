package scheduler

import (
	"context"
	"fmt"
	"haven/infras/otel"
	"haven/shared/constant"
	"haven/shared/timezone"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Job is a named unit of periodic work. Spec accepts standard cron expressions
// and descriptors such as "@every 15m". A positive Timeout bounds each run.
type Job struct {
	Name    string
	Spec    string
	Timeout time.Duration
	Run     func(ctx context.Context) error
}

type Scheduler interface {
	Register(jobs ...Job) error
	Start()
	Stop()
}

type cronScheduler struct {
	cron    *cron.Cron
	otel    otel.Otel
	mu      sync.Mutex
	started bool
}

func New(otel otel.Otel) Scheduler {
	return &cronScheduler{
		cron: cron.New(cron.WithLocation(timezone.GetLocation())),
		otel: otel,
	}
}

func (s *cronScheduler) Register(jobs ...Job) error {
	for _, job := range jobs {
		if job.Spec == "" {
			log.Warn().Str("job", job.Name).Msg("job has no schedule, skipping")

			continue
		}

		if _, err := s.cron.AddFunc(job.Spec, s.wrap(job)); err != nil {
			return fmt.Errorf("failed to register job %s: %w", job.Name, err)
		}

		log.Info().Str("job", job.Name).Str("spec", job.Spec).Msg("job registered")
	}

	return nil
}

func (s *cronScheduler) wrap(job Job) func() {
	return func() {
		ctx := context.Background()

		if job.Timeout > 0 {
			var cancel context.CancelFunc

			ctx, cancel = context.WithTimeout(ctx, job.Timeout)
			defer cancel()
		}

		ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScope, constant.OtelSchedulerScope+"."+job.Name)
		defer scope.End()

		if err := job.Run(ctx); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("job", job.Name).Msg("scheduled job failed")

			return
		}

		log.Debug().Str("job", job.Name).Msg("scheduled job finished")
	}
}

func (s *cronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}

	s.cron.Start()
	s.started = true

	log.Info().Int("jobs", len(s.cron.Entries())).Msg("scheduler started")
}

func (s *cronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	<-s.cron.Stop().Done()
	s.started = false

	log.Info().Msg("scheduler stopped")
}
