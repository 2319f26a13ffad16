package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/schemaflow/migration-engine/internal/domain/error"
	"github.com/schemaflow/migration-engine/internal/infrastructure/adapter/api/dto"
)

// Context keys set by TeamContext
const (
	ContextTeamID  = "team_id"
	ContextActorID = "actor_id"
)

// TeamContext extracts the team and actor identity from request headers.
// The engine sits behind a gateway that authenticates and injects these;
// a request without a team identity is rejected outright.
func TeamContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		teamID := c.GetHeader("X-Team-ID")
		if teamID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Missing required header: X-Team-ID",
			})
			return
		}

		c.Set(ContextTeamID, teamID)
		c.Set(ContextActorID, c.GetHeader("X-User-ID"))
		c.Next()
	}
}

// TeamID returns the authenticated team for this request
func TeamID(c *gin.Context) string {
	return c.GetString(ContextTeamID)
}

// ActorID returns the acting user for this request, possibly empty
func ActorID(c *gin.Context) string {
	return c.GetString(ContextActorID)
}
