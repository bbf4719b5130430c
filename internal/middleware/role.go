package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly middleware requires admin role
func AdminOnly() gin.HandlerFunc {
	return RequireRole(string(domain.RoleAdmin))
}

type userReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// UserGate holds the per-request user lookups some routes need on top of the
// token claims (suspension and verification flags live in the DB, not in the
// token).
type UserGate struct {
	users userReader
}

func NewUserGate(users userReader) *UserGate {
	return &UserGate{users: users}
}

// BlockSuspended lets suspended users keep reading but rejects every mutating
// request. Must run after JWTAuth.
func (g *UserGate) BlockSuspended() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		user, err := g.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
			c.Abort()
			return
		}

		if user.IsSuspended {
			response.Error(c, http.StatusForbidden, "ACCOUNT_SUSPENDED", "Account is suspended")
			c.Abort()
			return
		}

		c.Next()
	}
}

// VerifiedProviderOnly requires the caller to be a provider whose account has
// passed admin verification.
func (g *UserGate) VerifiedProviderOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetInt64("user_id")
		if userID == 0 {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
			c.Abort()
			return
		}

		user, err := g.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not found")
			c.Abort()
			return
		}

		if user.Role != domain.RoleProvider || !user.IsVerified {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Verified provider access only")
			c.Abort()
			return
		}

		c.Next()
	}
}
