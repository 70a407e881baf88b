package jobs

import (
	"context"
	"haven/config"
	"haven/infras/scheduler"
	healthService "haven/internal/domains/health/service"
	siteService "haven/internal/domains/site/service"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	JobKeepAlive = "keep_alive"
	JobWarmCache = "warm_site_cache"
)

type Jobs struct {
	scheduler scheduler.Scheduler
	cfg       *config.Config
	health    healthService.Health
	site      siteService.Site
}

func New(scheduler scheduler.Scheduler, cfg *config.Config, health healthService.Health, site siteService.Site) *Jobs {
	return &Jobs{
		scheduler: scheduler,
		cfg:       cfg,
		health:    health,
		site:      site,
	}
}

// Definitions lists the periodic jobs with their configured schedules.
func (j *Jobs) Definitions() []scheduler.Job {
	timeout := time.Duration(j.cfg.App.Scheduler.JobTimeoutSeconds) * time.Second

	return []scheduler.Job{
		{
			Name:    JobKeepAlive,
			Spec:    j.cfg.App.Scheduler.KeepAliveSpec,
			Timeout: timeout,
			Run:     j.keepAlive,
		},
		{
			Name:    JobWarmCache,
			Spec:    j.cfg.App.Scheduler.WarmCacheSpec,
			Timeout: timeout,
			Run:     j.site.Warm,
		},
	}
}

// Start registers and starts the jobs when the scheduler is enabled. The returned stop func is
// always safe to call.
func (j *Jobs) Start() (func(), error) {
	if !j.cfg.App.Scheduler.Enable {
		log.Info().Msg("scheduler disabled")

		return func() {}, nil
	}

	if err := j.scheduler.Register(j.Definitions()...); err != nil {
		return func() {}, err
	}

	j.scheduler.Start()

	return j.scheduler.Stop, nil
}

func (j *Jobs) keepAlive(ctx context.Context) error {
	res, err := j.health.Check(ctx)
	if err != nil {
		return err
	}

	log.Info().Str("status", res.Status).Msg("database keep-alive")

	return nil
}
