package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
)

type ProgressHandler struct {
	log             *logger.Logger
	progressService services.ProgressService
}

func NewProgressHandler(log *logger.Logger, progressService services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		log:             log.With("handler", "ProgressHandler"),
		progressService: progressService,
	}
}

func (h *ProgressHandler) Get(c *gin.Context) {
	email := c.Param("email")
	progress, err := h.progressService.Get(c.Request.Context(), email)
	if err != nil {
		h.log.Error("Get progress failed", "user_email", email, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"progress": progress})
}

type markChapterRequest struct {
	UserEmail string `json:"user_email"`
	UserName  string `json:"user_name"`
	Book      string `json:"book"`
	Chapter   int    `json:"chapter"`
	Read      bool   `json:"read"`
}

func (h *ProgressHandler) MarkChapter(c *gin.Context) {
	var req markChapterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	progress, err := h.progressService.MarkChapter(c.Request.Context(), req.UserEmail, req.UserName, req.Book, req.Chapter, req.Read)
	if err != nil {
		h.log.Error("Mark chapter failed", "user_email", req.UserEmail, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"progress": progress})
}

func (h *ProgressHandler) Leaderboard(c *gin.Context) {
	board, err := h.progressService.Leaderboard(c.Request.Context())
	if err != nil {
		h.log.Error("Leaderboard failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"leaderboard": board})
}
