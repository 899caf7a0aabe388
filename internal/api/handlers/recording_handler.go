package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/callscribe/callscribe/internal/providers/telephony"
	"github.com/callscribe/callscribe/internal/services"
)

// RecordingHandler receives the recording-complete webhook and runs the
// pipeline. Its one hard contract: the provider always gets an empty 200
// acknowledgment, whatever happens inside, so a completed call is never
// redelivered.
type RecordingHandler struct {
	pipeline *services.PipelineService
}

func NewRecordingHandler(pipeline *services.PipelineService) *RecordingHandler {
	return &RecordingHandler{pipeline: pipeline}
}

func (h *RecordingHandler) Complete(c *gin.Context) {
	ev := services.RecordingEvent{
		From:            c.PostForm("From"),
		To:              c.PostForm("To"),
		CallID:          c.PostForm("CallSid"),
		RecordingURL:    c.PostForm("RecordingUrl"),
		RecordingID:     c.PostForm("RecordingSid"),
		DurationSeconds: c.PostForm("RecordingDuration"),
	}

	// The outcome is fully logged inside Process; nothing of it may leak
	// into the response.
	_ = h.pipeline.Process(c.Request.Context(), ev)

	writeTwiML(c, telephony.Ack())
}
