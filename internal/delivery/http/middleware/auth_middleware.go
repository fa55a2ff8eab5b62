package middleware

import (
	"context"
	"net/http"
	"strings"

	"maternacare/internal/domain/entity"
	"maternacare/internal/domain/repository"
	"maternacare/internal/infrastructure/identity"
	"maternacare/pkg/response"

	"github.com/pkg/errors"
)

type contextKey string

const userKey contextKey = "user"

type AuthMiddleware struct {
	provider identity.Provider
	users    repository.UserRepository
}

func NewAuthMiddleware(provider identity.Provider, users repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{provider: provider, users: users}
}

// Authenticate resolves the bearer token to a full user record and stores
// it in the request context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Authorization header is required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Invalid authorization header format")
			return
		}

		userID, err := m.provider.Verify(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrTokenRevoked):
				response.Unauthorized(w, "Token has been revoked")
			case errors.Is(err, identity.ErrInvalidToken):
				response.Unauthorized(w, "Invalid or expired token")
			default:
				response.InternalServerError(w, "Failed to validate token")
			}
			return
		}

		user, err := m.users.FindByID(r.Context(), userID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate token")
			return
		}
		if user == nil {
			response.Unauthorized(w, "User profile not found")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserFromContext extracts the authenticated user from context.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(userKey).(*entity.User)
	return user, ok
}
