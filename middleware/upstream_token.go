package middleware

import (
	"net/http"
	"strings"

	"github.com/Godtasan552/selling-shirts-backend/models"
	"github.com/gin-gonic/gin"
)

// UpstreamToken pulls the caller's bearer token off the request and stashes
// it for the upstream collaborators. The token is opaque here - the shop
// API is the one that accepts or rejects it. Required=false lets public
// storefront routes pass an empty token through.
func UpstreamToken(required bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}
			token = parts[1]
		}

		if required && token == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
			c.Abort()
			return
		}

		c.Set("upstreamToken", token)
		c.Next()
	}
}

// GetUpstreamToken returns the token stashed by UpstreamToken, empty when
// the route ran without one.
func GetUpstreamToken(c *gin.Context) string {
	if token, exists := c.Get("upstreamToken"); exists {
		if s, ok := token.(string); ok {
			return s
		}
	}
	return ""
}
