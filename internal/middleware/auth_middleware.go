package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aydink/acadmin/internal/app/models"
	"github.com/aydink/acadmin/internal/app/models/dto"
	"github.com/aydink/acadmin/internal/pkg/apperrors"
	"github.com/aydink/acadmin/internal/pkg/auth"
)

// Context keys populated by JWTAuth
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and attaches {user_id, role} to the
// request context. Handlers re-check the role against their own
// allow-list via RoleRequired.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "authentication required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			HandleAPIError(c, &apperrors.CustomError{
				Err: apperrors.ErrTokenInvalid, Message: "invalid token format"})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			appErr := apperrors.ErrTokenInvalid
			if errors.Is(err, auth.ErrExpiredToken) {
				appErr = apperrors.ErrTokenExpired
			}
			HandleAPIError(c, appErr)
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RoleRequired checks the authenticated role against an allow-list.
// Runs after JWTAuth.
func (m *AuthMiddleware) RoleRequired(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(http.StatusUnauthorized, "authentication required"))
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, allowedRole := range allowed {
				if models.Role(roleStr) == allowedRole {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden,
			dto.NewErrorResponse(http.StatusForbidden, "access denied"))
	}
}

// CallerIdentity reads the authenticated identity from the context
func CallerIdentity(c *gin.Context) (string, models.Role) {
	userID := c.GetString(ContextUserID)
	role := models.Role(c.GetString(ContextRole))
	return userID, role
}
