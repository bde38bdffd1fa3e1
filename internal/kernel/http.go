// Package kernel assembles the RentalEase HTTP handler: services and
// controllers over a repository set, event listeners, the global middleware
// stack and every route.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/rentalease/app/controllers"
	"github.com/shashiranjanraj/rentalease/app/listeners"
	"github.com/shashiranjanraj/rentalease/app/repositories"
	"github.com/shashiranjanraj/rentalease/app/routes"
	"github.com/shashiranjanraj/rentalease/app/services"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/cache"
	"github.com/shashiranjanraj/rentalease/pkg/event"
	"github.com/shashiranjanraj/rentalease/pkg/metrics"
	"github.com/shashiranjanraj/rentalease/pkg/middleware"
	"github.com/shashiranjanraj/rentalease/pkg/reqid"
	"github.com/shashiranjanraj/rentalease/pkg/response"
	"github.com/shashiranjanraj/rentalease/pkg/router"
)

const banner = "RentalEase API is running"

// Deps is everything the kernel needs from the outside world.
type Deps struct {
	Repos  repositories.Set
	Tokens *auth.Tokens

	// Cache may be nil; reads then always hit the store.
	Cache *cache.Store
	// Events may be nil; a synchronous dispatcher is used instead.
	Events *event.Dispatcher

	// Location is the zone booking instants are rendered in. Defaults to UTC.
	Location     *time.Location
	SecureCookie bool
	CORSOrigins  []string

	// AuthRateLimit caps signin/login requests per client per minute.
	// Zero disables the limit.
	AuthRateLimit int
	// TrustProxy keys the limit on X-Forwarded-For instead of the peer address.
	TrustProxy bool
}

// HTTPKernel owns the router built from Deps.
type HTTPKernel struct {
	router *router.Router
}

func NewHTTPKernel(d Deps) *HTTPKernel {
	if d.Events == nil {
		d.Events = event.NewDispatcher(nil)
	}
	if d.Location == nil {
		d.Location = time.UTC
	}
	listeners.Register(d.Events, d.Cache)

	r := router.New()

	// Global middleware, outermost first.
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions(d.CORSOrigins...)),
	)

	r.Get("/", "home", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(banner))
	})
	r.Get("/healthz", "health", func(w http.ResponseWriter, _ *http.Request) {
		response.Success(w, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	routes.RegisterAPI(r, routes.Controllers{
		Users:    controllers.NewAuthController(services.NewAuthService(auth.KindUser, d.Repos.Users, d.Tokens), d.SecureCookie),
		Admins:   controllers.NewAuthController(services.NewAuthService(auth.KindHost, d.Repos.Admins, d.Tokens), d.SecureCookie),
		Hostings: controllers.NewHostingController(services.NewHostingService(d.Repos.Hostings, d.Cache, d.Events)),
		Bookings: controllers.NewBookingController(
			services.NewBookingService(d.Repos.Bookings, d.Repos.Hostings, d.Events),
			d.Location,
		),
	}, d.Tokens, authLimiter(d.AuthRateLimit, d.TrustProxy))

	return &HTTPKernel{router: r}
}

func authLimiter(perMinute int, trustProxy bool) *middleware.RateLimiter {
	if perMinute <= 0 {
		return nil
	}
	return middleware.NewRateLimiter(perMinute, time.Minute, trustProxy)
}

func (k *HTTPKernel) Handler() http.Handler { return k.router.Handler() }

// Routes lists the named routes, for route:list.
func (k *HTTPKernel) Routes() []router.RouteInfo { return k.router.Routes() }
