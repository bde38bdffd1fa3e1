// Package rbac gates routes on the capabilities of the authenticated
// principal. middleware.Authenticate must run first.
package rbac

import (
	"net/http"

	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/middleware"
	"github.com/shashiranjanraj/rentalease/pkg/response"
)

// Require allows the request through only when the principal holds every
// listed capability. Unauthenticated requests get 401, others 403.
func Require(caps ...auth.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := middleware.PrincipalFromCtx(r)
			if !ok {
				response.Unauthorized(w)
				return
			}
			for _, c := range caps {
				if !p.Can(c) {
					response.Forbidden(w, "Missing capability: "+string(c))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
