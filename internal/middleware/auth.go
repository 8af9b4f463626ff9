package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Marmosets/internal/dto"
	"github.com/lshigami/Marmosets/internal/model"
	"github.com/lshigami/Marmosets/internal/service"
)

const userIDKey = "userID"

// RequireAuth validates the Bearer token and stores the user ID on the
// request context.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing or malformed Authorization header"})
			return
		}

		userID, err := authService.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		ctx.Set(userIDKey, userID)
		ctx.Next()
	}
}

// RequireAdmin must run after RequireAuth.
func RequireAdmin(authService service.AuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := CurrentUserID(ctx)
		user, err := authService.GetUserByID(userID)
		if err != nil || user.Role != model.RoleAdmin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Admin access required"})
			return
		}
		ctx.Next()
	}
}

// CurrentUserID returns the authenticated user's ID set by RequireAuth.
func CurrentUserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
