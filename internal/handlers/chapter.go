package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/keys"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
)

type ChapterHandler struct {
	log            *logger.Logger
	chapterService services.ChapterService
}

func NewChapterHandler(log *logger.Logger, chapterService services.ChapterService) *ChapterHandler {
	return &ChapterHandler{
		log:            log.With("handler", "ChapterHandler"),
		chapterService: chapterService,
	}
}

// Canon serves the fixed book list clients build navigation from.
func (h *ChapterHandler) Canon(c *gin.Context) {
	RespondOK(c, gin.H{
		"books":          keys.Canon,
		"total_chapters": keys.TotalChapters,
	})
}

// Epigraph reads generate-on-first-access: a GET can trigger generation.
func (h *ChapterHandler) Epigraph(c *gin.Context) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return
	}
	meta, err := h.chapterService.Epigraph(c.Request.Context(), book, chapter)
	if err != nil {
		h.log.Error("Epigraph failed", "book", book, "chapter", chapter, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, meta)
}
