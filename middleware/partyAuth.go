package middleware

import (
	"net/http"
	"strings"

	"hirewire/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by JWTAuthPartyMiddleware.
const (
	PartyIDKey = "partyID"
	RoleKey    = "role"
)

// JWTAuthPartyMiddleware validates the bearer token issued by the identity
// service and exposes the caller's id and role to handlers.
func JWTAuthPartyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error:      "Missing or invalid Authorization header",
				ReasonCode: utils.ReasonUnauthenticated,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParsePartyToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Error:      "Invalid token",
				ReasonCode: utils.ReasonUnauthenticated,
			})
			return
		}

		c.Set(PartyIDKey, claims.PartyID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

// PartyID returns the authenticated caller id, or "" outside the middleware.
func PartyID(c *gin.Context) string {
	return c.GetString(PartyIDKey)
}
