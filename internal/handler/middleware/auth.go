package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"discount-hub/internal/domain/user"
	"discount-hub/internal/usecase"
	"discount-hub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	userQueries    queries.UserQueries
}

const (
	ctxSubjectIDKey   = "subject_id"
	ctxSubjectRoleKey = "subject_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, userQueries queries.UserQueries) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		userQueries:    userQueries,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		subjectID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		// Blocking takes effect immediately, not at token expiry: user
		// accounts are re-checked on every request. Brand subjects live
		// in their own table and have no block flag to consult.
		if role != user.RoleBrand {
			view, err := m.userQueries.GetAuthorized(c.Request.Context(), subjectID)
			if err != nil || view == nil || !view.IsActive {
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Account is blocked or no longer exists",
				})
				c.Abort()
				return
			}
		}

		c.Set(ctxSubjectIDKey, subjectID)
		c.Set(ctxSubjectRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"subject_id": subjectID.String(),
			"role":       string(role),
		})
		c.Next()
	}
}

// RequirePermission consults the static capability table; it must run
// after RequireAuth.
func (m *AuthMiddleware) RequirePermission(resource user.Resource, action user.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetSubjectRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !user.HasPermission([]user.Role{role}, resource, action) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireRole limits a route to an explicit set of roles.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetSubjectRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		for _, allowed := range roles {
			if role == allowed || role == user.RoleAdmin {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSubjectID(c *gin.Context) (uuid.UUID, bool) {
	subjectID, exists := c.Get(ctxSubjectIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := subjectID.(uuid.UUID)
	return id, ok
}

func GetSubjectRole(c *gin.Context) (user.Role, bool) {
	subjectRole, exists := c.Get(ctxSubjectRoleKey)
	if !exists {
		return "", false
	}

	role, ok := subjectRole.(user.Role)
	return role, ok
}
