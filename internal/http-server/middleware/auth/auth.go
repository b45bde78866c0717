package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"tickethub/internal/lib/api/response"
	"tickethub/internal/lib/jwt"
)

type claimsKey struct{}

// New validates the Bearer token and puts the caller's identity into the
// request context. Requests without a valid token are rejected with 401.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			claims, err := jwt.ParseToken(tokenString, secret)
			if err != nil {
				log.Warn("rejected token", slog.String("remote_addr", r.RemoteAddr))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// ClaimsFromContext returns the identity stored by the middleware.
func ClaimsFromContext(ctx context.Context) (jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwt.Claims)
	return claims, ok
}

// WithClaims is used by handler tests to inject an identity directly.
func WithClaims(ctx context.Context, claims jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// RequireRole rejects authenticated callers that lack every one of the given
// roles with 403.
func RequireRole(roles ...string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			for _, required := range roles {
				for _, role := range claims.Roles {
					if role == required {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("insufficient permissions"))
		}

		return http.HandlerFunc(fn)
	}
}

// HasRole reports whether the claims carry the role; handlers use it for
// owner-or-admin checks.
func HasRole(claims jwt.Claims, role string) bool {
	for _, r := range claims.Roles {
		if r == role {
			return true
		}
	}
	return false
}
