package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizpoint/quizpoint/internal/dto"
)

const identityKey = "auth.identity"

// RequireAuth validates the bearer token and stores the caller identity in
// the request context.
func RequireAuth(tokens *TokenService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or invalid Authorization header"})
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid Authorization header format"})
			return
		}
		tokenString := authHeader[len("Bearer "):]

		identity, err := tokens.Parse(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// RequireInstructor rejects callers whose token does not carry the
// instructor role. It must run after RequireAuth.
func RequireInstructor() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, ok := FromContext(ctx)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		if _, err := identity.AsInstructor(); err != nil {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Instructor role required"})
			return
		}
		ctx.Next()
	}
}

// FromContext returns the identity stored by RequireAuth.
func FromContext(ctx *gin.Context) (Identity, bool) {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}
