package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"jobconnect/internal/app"
	"jobconnect/internal/model"
	"jobconnect/internal/transport/http/response"
)

const ContextUserKey = "current_user"

// BearerAuth resolves the caller from the Authorization header. Every
// failure mode answers with the same generic 401 so a probing client cannot
// tell a malformed header from an unknown token.
func BearerAuth(authService *app.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" {
			unauthorized(c)
			return
		}

		const scheme = "Bearer "
		if !strings.HasPrefix(header, scheme) {
			unauthorized(c)
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, scheme))
		user, err := authService.ResolveToken(c.Request.Context(), raw)
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	response.Detail(c, http.StatusUnauthorized, "Bearer token required")
	c.Abort()
}

// CurrentUser pulls the authenticated user stored by BearerAuth.
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
