package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReadingProgress tracks one member's completed chapters. Owned by a single
// user; updated by field-level merge, never delete-then-create.
type ReadingProgress struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserEmail     string                      `gorm:"index;not null;column:user_email" json:"user_email"`
	UserName      string                      `gorm:"not null;column:user_name" json:"user_name"`
	ChaptersRead  datatypes.JSONSlice[string] `gorm:"column:chapters_read" json:"chapters_read"`
	TotalChapters int                         `gorm:"column:total_chapters" json:"total_chapters"`
	LastBook      string                      `gorm:"column:last_book" json:"last_book"`
	LastChapter   int                         `gorm:"column:last_chapter" json:"last_chapter"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (ReadingProgress) TableName() string {
	return "reading_progress"
}

func (p *ReadingProgress) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasRead reports whether the chapter key is in the completed set.
func (p *ReadingProgress) HasRead(chapterKey string) bool {
	for _, k := range p.ChaptersRead {
		if k == chapterKey {
			return true
		}
	}
	return false
}
