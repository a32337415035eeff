package routes

import (
	"time"

	"hirewire/handlers"
	"hirewire/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterInterviewRoutes sets up the slot negotiation endpoints.
func RegisterInterviewRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/interviews")
	{
		api.Use(middleware.JWTAuthPartyMiddleware())

		api.GET("/calendar", hb.GetCalendar)

		proposer := middleware.RequireRole(middleware.RoleProposer)
		responder := middleware.RequireRole(middleware.RoleResponder)

		api.POST("/slots", proposer, hb.ProposeSlots)
		api.GET("/slots/pending", responder, hb.GetPendingSlots)
		api.POST("/slots/:slotId/confirm", responder, hb.ConfirmSlot)

		api.GET("/groups/:groupId", hb.GetGroup)
		api.POST("/groups/:groupId/reject", responder, hb.RejectGroup)
	}
}

// RegisterDraftRoutes sets up the endpoints for building a proposal step by step.
func RegisterDraftRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	drafts := r.Group("/api/interviews/drafts")
	{
		drafts.Use(middleware.JWTAuthPartyMiddleware(), middleware.RequireRole(middleware.RoleProposer))
		drafts.POST("", hb.OpenDraft)
		drafts.GET("/:draftId", hb.GetDraft)
		drafts.PUT("/:draftId/slots", hb.AddDraftSlot)
		drafts.DELETE("/:draftId/slots", hb.RemoveDraftSlot)
		drafts.POST("/:draftId/submit", hb.SubmitDraft)
		drafts.DELETE("/:draftId", hb.DiscardDraft)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb)
	RegisterInterviewRoutes(r, hb)
	RegisterDraftRoutes(r, hb)
}
