package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/rentalease/pkg/auth"
	"github.com/shashiranjanraj/rentalease/pkg/logger"
	"github.com/shashiranjanraj/rentalease/pkg/response"
)

// TokenResolver turns a bearer token into a principal.
type TokenResolver interface {
	Resolve(token string) (auth.Principal, error)
}

type principalKey struct{}

// WithPrincipal stores p in ctx.
func WithPrincipal(ctx context.Context, p auth.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromCtx returns the principal attached by Authenticate.
func PrincipalFromCtx(r *http.Request) (auth.Principal, bool) {
	p, ok := r.Context().Value(principalKey{}).(auth.Principal)
	return p, ok
}

// Authenticate rejects requests without a valid "Authorization: Bearer"
// token with 401 and never calls next for them. On success the principal is
// available through PrincipalFromCtx.
func Authenticate(tokens TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				response.Error(w, http.StatusUnauthorized, "Authorization token missing")
				return
			}

			p, err := tokens.Resolve(raw)
			if err != nil {
				logger.WithCtx(r.Context()).Debug("token rejected", "error", err)
				response.Error(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	h := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(h, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
