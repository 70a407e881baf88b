package router

import (
	"haven/internal/handlers/admin"
	"haven/internal/handlers/auth"
	"haven/internal/handlers/dashboard"
	"haven/internal/handlers/event"
	"haven/internal/handlers/footer"
	"haven/internal/handlers/gallery"
	"haven/internal/handlers/health"
	"haven/internal/handlers/inquiry"
	"haven/internal/handlers/newsletter"
	"haven/internal/handlers/permission"
	"haven/internal/handlers/site"
	"haven/internal/handlers/testimonial"
	"haven/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Admin       admin.Handler
	Permission  permission.Handler
	Gallery     gallery.Handler
	Event       event.Handler
	Testimonial testimonial.Handler
	Inquiry     inquiry.Handler
	Newsletter  newsletter.Handler
	Footer      footer.Handler
	Dashboard   dashboard.Handler
	Site        site.Handler
	Health      health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	App            middleware.AppMiddleware
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.Use(r.App.Tracing)
	router.Use(r.App.SecurityHeaders)
	router.Use(r.App.CORS())

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.App.RateLimit())
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Health.Router(routerGroup)

		routerGroup.Route("/site", func(siteGroup chi.Router) {
			r.DomainHandlers.Site.PublicRouter(siteGroup)
			r.DomainHandlers.Gallery.PublicRouter(siteGroup)
			r.DomainHandlers.Event.PublicRouter(siteGroup)
			r.DomainHandlers.Testimonial.PublicRouter(siteGroup)
			r.DomainHandlers.Inquiry.PublicRouter(siteGroup)
			r.DomainHandlers.Newsletter.PublicRouter(siteGroup)
			r.DomainHandlers.Footer.PublicRouter(siteGroup)
		})

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Permission.Router(routerGroup)
		r.DomainHandlers.Gallery.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
		r.DomainHandlers.Testimonial.Router(routerGroup)
		r.DomainHandlers.Inquiry.Router(routerGroup)
		r.DomainHandlers.Newsletter.Router(routerGroup)
		r.DomainHandlers.Footer.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, app middleware.AppMiddleware, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		App:            app,
		AuthRole:       authRole,
	}
}
