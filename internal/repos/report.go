package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type ReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error)
	ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Report, error)
}

type reportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
	return &reportRepo{db: db, log: baseLog.With("repo", "ReportRepo")}
}

func (r *reportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (r *reportRepo) ListByStatus(ctx context.Context, tx *gorm.DB, status string) ([]*types.Report, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Report
	q := transaction.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Order("created_at DESC").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
