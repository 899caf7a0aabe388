package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/callscribe/callscribe/internal/api/handlers"
	"github.com/callscribe/callscribe/internal/api/middleware"
)

type Deps struct {
	Voice       *handlers.VoiceHandler
	Recording   *handlers.RecordingHandler
	Transcripts *handlers.TranscriptHandler

	// BearerSecret guards the management group.
	BearerSecret string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Telephony provider webhooks. No auth beyond the provider contract;
	// both endpoints answer call-control markup.
	r.POST("/webhook/voice", d.Voice.Inbound)
	r.POST("/webhook/recording", d.Recording.Complete)

	// Management API (shared-secret bearer)
	api := r.Group("/api")
	api.Use(middleware.BearerAuth(d.BearerSecret))

	api.GET("/transcripts", d.Transcripts.List)
	api.DELETE("/transcripts/:id", d.Transcripts.Delete)
}
