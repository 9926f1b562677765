package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/clients/gemini"
	"github.com/admaagape/studyapi/internal/logger"
)

type AdminHandler struct {
	log *logger.Logger
	ai  gemini.Client
}

func NewAdminHandler(log *logger.Logger, ai gemini.Client) *AdminHandler {
	return &AdminHandler{
		log: log.With("handler", "AdminHandler"),
		ai:  ai,
	}
}

type emergencyKeyRequest struct {
	Key string `json:"key"`
}

// SetEmergencyKey installs a runtime API key override. An empty key clears
// the override and falls back to the configured one.
func (h *AdminHandler) SetEmergencyKey(c *gin.Context) {
	var req emergencyKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	h.ai.SetEmergencyKey(req.Key)
	RespondOK(c, gin.H{"installed": req.Key != ""})
}
