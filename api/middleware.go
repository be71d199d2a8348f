package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weatherreminder.app/models"
)

const userContextKey = "currentUser"

// requireAuth authenticates the request with a Bearer access token and stores
// the resolved user in the request context
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse{Error: "authentication credentials were not provided"})
			return
		}

		user, err := s.authService.Authenticate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse{Error: "token is invalid or expired"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// currentUser returns the authenticated user stored by requireAuth
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), parts[1] != ""
}
