package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/services"
	"github.com/admaagape/studyapi/internal/types"
)

type ReportHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewReportHandler(log *logger.Logger, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		log:           log.With("handler", "ReportHandler"),
		reportService: reportService,
	}
}

type submitReportRequest struct {
	UserName    string `json:"user_name"`
	ContentType string `json:"content_type"`
	Reference   string `json:"reference"`
	Description string `json:"description"`
}

func (h *ReportHandler) Submit(c *gin.Context) {
	var req submitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_generation", err)
		return
	}
	report, err := h.reportService.Submit(c.Request.Context(), &types.Report{
		UserName:    req.UserName,
		ContentType: req.ContentType,
		Reference:   req.Reference,
		Description: req.Description,
	})
	if err != nil {
		h.log.Error("Submit report failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, report)
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.log.Error("List reports failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"reports": reports})
}
