package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChapterMetadata is the generated epigraph (title + subtitle) shown above a
// chapter. One record per chapter key, generated once on first access.
type ChapterMetadata struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterKey string    `gorm:"index;not null;column:chapter_key" json:"chapter_key"`
	Title      string    `gorm:"not null;column:title" json:"title"`
	Subtitle   string    `gorm:"column:subtitle" json:"subtitle"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (ChapterMetadata) TableName() string {
	return "chapter_metadata"
}

func (m *ChapterMetadata) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
