package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/callscribe/callscribe/config"
	"github.com/callscribe/callscribe/internal/providers/telephony"
)

// VoiceHandler answers the call-start webhook with recording instructions.
type VoiceHandler struct {
	cfg    config.ServerConfig
	maxLen int
	logger *logrus.Logger
}

func NewVoiceHandler(cfg config.ServerConfig, maxRecordingSecs int, l *logrus.Logger) *VoiceHandler {
	return &VoiceHandler{cfg: cfg, maxLen: maxRecordingSecs, logger: l}
}

func (h *VoiceHandler) Inbound(c *gin.Context) {
	from := c.PostForm("From")
	to := c.PostForm("To")

	h.logger.WithFields(logrus.Fields{
		"from": from,
		"to":   to,
	}).Info("inbound call")

	markup := telephony.RecordPrompt(h.cfg.PublicBaseURL+"/webhook/recording", h.maxLen)
	writeTwiML(c, markup)
}

func writeTwiML(c *gin.Context, r *telephony.VoiceResponse) {
	body, err := r.Render()
	if err != nil {
		// Markup rendering cannot realistically fail; answer an empty ack
		// rather than an error the provider would retry.
		c.Data(http.StatusOK, "text/xml; charset=utf-8", []byte("<Response></Response>"))
		return
	}
	c.Data(http.StatusOK, "text/xml; charset=utf-8", body)
}
