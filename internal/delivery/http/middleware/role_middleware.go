package middleware

import (
	"net/http"

	"maternacare/internal/domain/entity"
	"maternacare/pkg/response"
)

// RequireRole creates a middleware that checks if the authenticated user
// has any of the allowed roles. It must run after Authenticate.
func RequireRole(allowed ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUserFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "User information not found")
				return
			}

			for _, role := range allowed {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			response.Forbidden(w, "You don't have permission to access this resource")
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireClinic is a convenience middleware for clinic-only endpoints.
func RequireClinic(next http.Handler) http.Handler {
	return RequireRole(entity.RoleClinic)(next)
}
