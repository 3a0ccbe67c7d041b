package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/rohits-web03/postdev/internal/api/services"
	"github.com/rohits-web03/postdev/internal/models"
	"github.com/rohits-web03/postdev/internal/utils"
)

type contextKey string

const userKey contextKey = "user"

// UserFromContext returns the caller resolved by AuthMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok && user != nil
}

// WithUser stores user as the authenticated caller of ctx.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// AuthMiddleware resolves the Authorization header into a user. Missing and
// invalid tokens are both answered with 403.
func AuthMiddleware(resolver *services.IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			user, err := resolver.Resolve(r.Context(), r.Header.Get("Authorization"))
			switch {
			case err == nil:
			case errors.Is(err, services.ErrUnauthenticated), errors.Is(err, services.ErrInvalidToken):
				utils.ErrorResponse(w, http.StatusForbidden, "Forbidden")
				return
			default:
				log.Printf("request_id=%s resolve user: %v", RequestIDFromContext(r.Context()), err)
				utils.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}
