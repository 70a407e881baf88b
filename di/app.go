package di

import (
	"context"
	"haven/internal/domains/admin/service"
	"haven/internal/jobs"
	"haven/transport/http"

	"github.com/rs/zerolog/log"
)

// Application is everything a process entrypoint needs after wiring.
type Application struct {
	HTTP  *http.HTTP
	Jobs  *jobs.Jobs
	Admin service.Admin
}

// Bootstrap seeds the owner account. A failure is logged and does not stop the server.
func (a *Application) Bootstrap(ctx context.Context) {
	if err := a.Admin.Bootstrap(ctx); err != nil {
		log.Error().Err(err).Msg("failed to bootstrap admin account")
	}
}
