package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/arthurhenrique02/doc-pay-manager/services"
	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store the caller
// identity in the request context.
type contextKey string

const identityKey contextKey = "identity"

// TokenAuthMiddleware resolves the bearer token from the Authorization
// header and adds the caller identity to the request context.
func TokenAuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is missing")
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			unauthorized(c, "Invalid Authorization header format")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := authService.ResolveToken(c.Request.Context(), token)
		if err != nil {
			unauthorized(c, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(c.Request.Context(), identityKey, identity)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
	c.Abort()
}

// ExtractIdentityFromContext retrieves the caller identity from the context.
func ExtractIdentityFromContext(ctx context.Context) (*services.Identity, error) {
	identity, ok := ctx.Value(identityKey).(*services.Identity)
	if !ok || identity == nil {
		return nil, errors.New("identity not found in context")
	}
	return identity, nil
}
