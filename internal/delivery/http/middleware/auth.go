package middleware

import (
	"net/http"
	"strings"

	"github.com/gdugdh24/creatormatch-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// TokenValidator verifies bearer tokens
type TokenValidator interface {
	ValidateToken(token string) (domain.Actor, error)
}

type AuthMiddleware struct {
	validator TokenValidator
}

func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
	}
}

// RequireAuth rejects requests without a valid bearer token and stores
// the caller's id and role in the gin context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		actor, err := m.validator.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(ContextUserID, actor.ID)
		c.Set(ContextRole, actor.Role)
		c.Next()
	}
}

// RequireRole allows only callers with one of the given roles.
// Must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
	}
}

// ActorFrom returns the authenticated caller set by RequireAuth
func ActorFrom(c *gin.Context) (domain.Actor, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return domain.Actor{}, false
	}
	role, ok := c.Get(ContextRole)
	if !ok {
		return domain.Actor{}, false
	}
	id, ok := userID.(int)
	if !ok {
		return domain.Actor{}, false
	}
	r, ok := role.(domain.Role)
	if !ok {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: r}, true
}
