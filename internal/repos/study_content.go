package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/admaagape/studyapi/internal/logger"
	"github.com/admaagape/studyapi/internal/types"
)

type StudyContentRepo interface {
	GetByKey(ctx context.Context, tx *gorm.DB, studyKey string) ([]*types.StudyContent, error)
	Create(ctx context.Context, tx *gorm.DB, study *types.StudyContent) (*types.StudyContent, error)
	// Update overwrites the accumulated fields with the caller's values.
	// Callers must read-modify-write; the repo performs no merge of its own.
	Update(ctx context.Context, tx *gorm.DB, study *types.StudyContent) (*types.StudyContent, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
	ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.StudyContent) error
}

type studyContentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudyContentRepo(db *gorm.DB, baseLog *logger.Logger) StudyContentRepo {
	return &studyContentRepo{db: db, log: baseLog.With("repo", "StudyContentRepo")}
}

func (r *studyContentRepo) GetByKey(ctx context.Context, tx *gorm.DB, studyKey string) ([]*types.StudyContent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.StudyContent
	if err := transaction.WithContext(ctx).
		Where("study_key = ?", studyKey).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studyContentRepo) Create(ctx context.Context, tx *gorm.DB, study *types.StudyContent) (*types.StudyContent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(study).Error; err != nil {
		return nil, err
	}
	return study, nil
}

func (r *studyContentRepo) Update(ctx context.Context, tx *gorm.DB, study *types.StudyContent) (*types.StudyContent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).
		Model(&types.StudyContent{}).
		Where("id = ?", study.ID).
		Updates(map[string]any{
			"title":               study.Title,
			"outline":             study.Outline,
			"student_content":     study.StudentContent,
			"teacher_content":     study.TeacherContent,
			"last_generated_part": study.LastGeneratedPart,
		}).Error; err != nil {
		return nil, err
	}
	return study, nil
}

func (r *studyContentRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Where("id = ?", id).
		Delete(&types.StudyContent{}).Error
}

func (r *studyContentRepo) ReplaceAll(ctx context.Context, tx *gorm.DB, records []*types.StudyContent) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(records) == 0 {
		return nil
	}
	if err := transaction.WithContext(ctx).
		Where("study_key = ?", records[0].StudyKey).
		Delete(&types.StudyContent{}).Error; err != nil {
		return err
	}
	return transaction.WithContext(ctx).Create(&records).Error
}
