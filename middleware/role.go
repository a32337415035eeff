package middleware

import (
	"net/http"

	"hirewire/utils"

	"github.com/gin-gonic/gin"
)

// Roles carried in the token's role claim.
const (
	RoleProposer  = "proposer"
	RoleResponder = "responder"
)

// RequireRole aborts with 403 unless the caller's role, set by
// JWTAuthPartyMiddleware, is one of roles.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(RoleKey)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{
			Error:      "Role not allowed for this action",
			Message:    "Your account cannot perform this action",
			ReasonCode: utils.ReasonForbidden,
		})
	}
}
