package services

import (
	"context"
	"strings"

	"github.com/admaagape/studyapi/internal/generr"
	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/store"
	"github.com/admaagape/studyapi/internal/types"
)

type ReportService interface {
	// Submit files a member's report against a piece of generated content.
	Submit(ctx context.Context, report *types.Report) (*types.Report, error)
	// List returns reports, optionally filtered by status.
	List(ctx context.Context, status string) ([]*types.Report, error)
}

type reportService struct {
	log   *logger.Logger
	store *store.Service
}

func NewReportService(log *logger.Logger, st *store.Service) ReportService {
	return &reportService{
		log:   log.With("service", "ReportService"),
		store: st,
	}
}

func (s *reportService) Submit(ctx context.Context, report *types.Report) (*types.Report, error) {
	if report == nil || strings.TrimSpace(report.Description) == "" {
		return nil, generr.Validation("report requires a description")
	}
	created, err := s.store.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}
	s.log.Info("Content report filed", "content_type", created.ContentType, "reference", created.Reference)
	return created, nil
}

func (s *reportService) List(ctx context.Context, status string) ([]*types.Report, error) {
	return s.store.ListReports(ctx, status)
}
