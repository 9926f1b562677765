package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
)

type DevotionalHandler struct {
	log               *logger.Logger
	devotionalService services.DevotionalService
}

func NewDevotionalHandler(log *logger.Logger, devotionalService services.DevotionalService) *DevotionalHandler {
	return &DevotionalHandler{
		log:               log.With("handler", "DevotionalHandler"),
		devotionalService: devotionalService,
	}
}

// Get answers locked and expired dates with the window state and no record;
// clients render the gate from the state label.
func (h *DevotionalHandler) Get(c *gin.Context) {
	dateKey := c.Param("date")
	result, err := h.devotionalService.Get(c.Request.Context(), dateKey)
	if err != nil {
		h.log.Error("Get devotional failed", "date", dateKey, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, result)
}

type regenerateDevotionalRequest struct {
	Instruction string `json:"instruction"`
}

func (h *DevotionalHandler) Regenerate(c *gin.Context) {
	dateKey := c.Param("date")
	var req regenerateDevotionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	devotional, err := h.devotionalService.Regenerate(c.Request.Context(), dateKey, req.Instruction)
	if err != nil {
		h.log.Error("Regenerate devotional failed", "date", dateKey, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, devotional)
}
