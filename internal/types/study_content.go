package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StudyContent is the Panorama EBD record for one chapter: accumulated
// student-facing and teacher-facing long-form text. Unlike every other
// collection it is mutated by merge-write, never delete-then-create; the
// accumulated fields only grow, except through explicit page removal.
type StudyContent struct {
	ID                uuid.UUID                     `gorm:"type:uuid;primaryKey" json:"id"`
	StudyKey          string                        `gorm:"index;not null;column:study_key" json:"study_key"`
	Book              string                        `gorm:"not null;column:book" json:"book"`
	Chapter           int                           `gorm:"not null;column:chapter" json:"chapter"`
	Title             string                        `gorm:"not null;column:title" json:"title"`
	Outline           datatypes.JSONSlice[string]   `gorm:"column:outline" json:"outline"`
	StudentContent    string                        `gorm:"type:text;column:student_content" json:"student_content"`
	TeacherContent    string                        `gorm:"type:text;column:teacher_content" json:"teacher_content"`
	LastGeneratedPart int                           `gorm:"column:last_generated_part" json:"last_generated_part"`
	CreatedAt         time.Time                     `json:"created_at"`
	UpdatedAt         time.Time                     `json:"updated_at"`
}

func (StudyContent) TableName() string {
	return "study_content"
}

func (s *StudyContent) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// ContentFor returns the accumulated text for the given audience target.
func (s *StudyContent) ContentFor(target string) string {
	if target == StudyTargetTeacher {
		return s.TeacherContent
	}
	return s.StudentContent
}

// SetContentFor overwrites the accumulated text for one audience target,
// leaving the other untouched.
func (s *StudyContent) SetContentFor(target, text string) {
	if target == StudyTargetTeacher {
		s.TeacherContent = text
		return
	}
	s.StudentContent = text
}

const (
	StudyTargetStudent = "student"
	StudyTargetTeacher = "teacher"
)
