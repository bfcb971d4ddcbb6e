package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"pharmashift/internal/domain/user"
	"pharmashift/internal/handler/httperr"
	"pharmashift/internal/pkg/cookie"
	"pharmashift/internal/pkg/jwt"
	"pharmashift/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const ctxActorKey = "actor"

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

type AuthMiddleware struct {
	tokenValidator TokenValidator
}

func NewAuthMiddleware(tokenValidator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth resolves the bearer token (or the access_token cookie) into a shared.Actor.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = cookie.GetAccessToken(c)
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, httperr.CodeUnauthorized, "Access token required")
			return
		}

		claims, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token")
			return
		}
		userID, err := claims.UserID()
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token")
			return
		}
		role, err := user.NewRole(claims.Role)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Token carries an unknown role")
			return
		}

		// Invitations match on email, so a malformed one is dropped rather than compared.
		var email string
		if e, err := user.NewEmail(claims.Email); err == nil {
			email = e.Value()
		}

		c.Set(ctxActorKey, shared.Actor{
			ID:    userID,
			Email: email,
			Role:  role.String(),
		})
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(allowed func(user.Role) bool, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, nil, httperr.CodeInternal, "Internal server error")
			return
		}
		if !allowed(user.Role(actor.Role)) {
			httperr.AbortWithError(c, http.StatusForbidden, nil, httperr.CodeForbidden, msg)
			return
		}
		c.Next()
	}
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return shared.Actor{}, false
	}
	actor, ok := v.(shared.Actor)
	return actor, ok
}

// SetActor is used by handler tests to bypass token validation.
func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxActorKey, actor)
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
