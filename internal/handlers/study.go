package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
	"github.com/admaagape/studyapi/internal/types"
)

type StudyHandler struct {
	log          *logger.Logger
	studyService services.StudyService
}

func NewStudyHandler(log *logger.Logger, studyService services.StudyService) *StudyHandler {
	return &StudyHandler{
		log:          log.With("handler", "StudyHandler"),
		studyService: studyService,
	}
}

func chapterParams(c *gin.Context) (string, int, bool) {
	book := c.Param("book")
	chapter, err := strconv.Atoi(c.Param("chapter"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return "", 0, false
	}
	return book, chapter, true
}

func studyTarget(c *gin.Context) string {
	if t := c.Query("target"); t != "" {
		return t
	}
	return types.StudyTargetStudent
}

func (h *StudyHandler) Get(c *gin.Context) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return
	}
	view, err := h.studyService.Get(c.Request.Context(), book, chapter, studyTarget(c))
	if err != nil {
		h.log.Error("Get study failed", "book", book, "chapter", chapter, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

type generateStudyRequest struct {
	Target      string `json:"target"`
	Mode        string `json:"mode"`
	Instruction string `json:"instruction"`
}

func (h *StudyHandler) Generate(c *gin.Context) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return
	}
	var req generateStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	if req.Target == "" {
		req.Target = types.StudyTargetStudent
	}
	if req.Mode == "" {
		req.Mode = services.ModeStart
	}
	view, err := h.studyService.Generate(c.Request.Context(), book, chapter, req.Target, req.Mode, req.Instruction)
	if err != nil {
		h.log.Error("Generate study failed", "book", book, "chapter", chapter, "target", req.Target, "mode", req.Mode, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

type setStudyContentRequest struct {
	Target string `json:"target"`
	Text   string `json:"text"`
}

func (h *StudyHandler) SetContent(c *gin.Context) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return
	}
	var req setStudyContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	if req.Target == "" {
		req.Target = types.StudyTargetStudent
	}
	view, err := h.studyService.SetContent(c.Request.Context(), book, chapter, req.Target, req.Text)
	if err != nil {
		h.log.Error("Manual study edit failed", "book", book, "chapter", chapter, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}

func (h *StudyHandler) DeletePage(c *gin.Context) {
	book, chapter, ok := chapterParams(c)
	if !ok {
		return
	}
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	view, err := h.studyService.DeletePage(c.Request.Context(), book, chapter, studyTarget(c), page)
	if err != nil {
		h.log.Error("Delete study page failed", "book", book, "chapter", chapter, "page", page, "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, view)
}
