package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/callscribe/callscribe/internal/services"
	"github.com/callscribe/callscribe/internal/utils"
)

type TranscriptHandler struct {
	svc services.TranscriptService
}

func NewTranscriptHandler(svc services.TranscriptService) *TranscriptHandler {
	return &TranscriptHandler{svc: svc}
}

func (h *TranscriptHandler) List(c *gin.Context) {
	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transcripts": rows,
	})
}

func (h *TranscriptHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "TranscriptHandler.Delete", "id must be a positive integer", err))
		return
	}

	if err := h.svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeError(c, err)
		return
	}

	// Deleting an unknown id is a no-op by contract, so 204 either way.
	c.Status(http.StatusNoContent)
}
