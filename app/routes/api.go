package routes

import (
	"github.com/shashiranjanraj/rentalease/app/controllers"
	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/ctx"
	"github.com/shashiranjanraj/rentalease/pkg/middleware"
	"github.com/shashiranjanraj/rentalease/pkg/rbac"
	"github.com/shashiranjanraj/rentalease/pkg/router"
)

// Controllers groups the handlers mounted by RegisterAPI.
type Controllers struct {
	Users    *controllers.AuthController
	Admins   *controllers.AuthController
	Hostings *controllers.HostingController
	Bookings *controllers.BookingController
}

// RegisterAPI mounts every API route. authLimiter throttles the signin and
// login endpoints; nil disables throttling.
func RegisterAPI(r *router.Router, c Controllers, tokens middleware.TokenResolver, authLimiter *middleware.RateLimiter) {
	authenticated := middleware.Authenticate(tokens)

	var throttle []router.Middleware
	if authLimiter != nil {
		throttle = append(throttle, authLimiter.Middleware)
	}

	users := r.Group("/users")
	users.Post("/signin", "users.signin", ctx.Wrap(c.Users.Signin), throttle...)
	users.Post("/login", "users.login", ctx.Wrap(c.Users.Login), throttle...)
	users.Get("/logout", "users.logout", ctx.Wrap(c.Users.Logout))

	admin := r.Group("/admin")
	admin.Post("/signin", "admin.signin", ctx.Wrap(c.Admins.Signin), throttle...)
	admin.Post("/login", "admin.login", ctx.Wrap(c.Admins.Login), throttle...)
	admin.Get("/logout", "admin.logout", ctx.Wrap(c.Admins.Logout))

	hosting := r.Group("/hosting")
	hosting.Get("/all", "hosting.index", ctx.Wrap(c.Hostings.Index))
	hosting.Get("/{id}", "hosting.show", ctx.Wrap(c.Hostings.Show))

	manage := hosting.Group("", authenticated, rbac.Require(auth.CapManageListings))
	manage.Post("/create", "hosting.create", ctx.Wrap(c.Hostings.Create))
	manage.Delete("/{id}", "hosting.destroy", ctx.Wrap(c.Hostings.Destroy))

	booking := r.Group("/booking", authenticated, rbac.Require(auth.CapBook))
	booking.Post("/create", "booking.create", ctx.Wrap(c.Bookings.Create))
	booking.Get("/mine", "booking.mine", ctx.Wrap(c.Bookings.Mine))
}
