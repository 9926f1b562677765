package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
)

type VerseHandler struct {
	log          *logger.Logger
	verseService services.VerseService
}

func NewVerseHandler(log *logger.Logger, verseService services.VerseService) *VerseHandler {
	return &VerseHandler{
		log:          log.With("handler", "VerseHandler"),
		verseService: verseService,
	}
}

// verseRequest carries the verse text the client already has open; generation
// needs it for the prompt and it is never stored verbatim.
type verseRequest struct {
	VerseText  string `json:"verse_text"`
	Regenerate bool   `json:"regenerate"`
}

func verseParams(c *gin.Context) (string, int, int, bool) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return "", 0, 0, false
	}
	verse, err := strconv.Atoi(c.Param("verse"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return "", 0, 0, false
	}
	return book, chapter, verse, true
}

func (h *VerseHandler) Commentary(c *gin.Context) {
	book, chapter, verse, ok := verseParams(c)
	if !ok {
		return
	}
	var req verseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	commentary, err := h.verseService.Commentary(c.Request.Context(), book, chapter, verse, req.VerseText, req.Regenerate)
	if err != nil {
		h.log.Error("Commentary failed", "book", book, "chapter", chapter, "verse", verse, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, commentary)
}

func (h *VerseHandler) Dictionary(c *gin.Context) {
	book, chapter, verse, ok := verseParams(c)
	if !ok {
		return
	}
	var req verseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	entry, err := h.verseService.Dictionary(c.Request.Context(), book, chapter, verse, req.VerseText, req.Regenerate)
	if err != nil {
		h.log.Error("Dictionary failed", "book", book, "chapter", chapter, "verse", verse, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, entry)
}
