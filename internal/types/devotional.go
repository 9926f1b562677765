package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Devotional is the daily devotional for one calendar date. The date key is
// immutable once created; regeneration replaces the whole record.
type Devotional struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date        string    `gorm:"index;not null;column:date" json:"date"`
	Title       string    `gorm:"not null;column:title" json:"title"`
	Reference   string    `gorm:"column:reference" json:"reference"`
	VerseText   string    `gorm:"type:text;column:verse_text" json:"verse_text"`
	Body        string    `gorm:"type:text;not null;column:body" json:"body"`
	Prayer      string    `gorm:"type:text;column:prayer" json:"prayer"`
	IsPublished bool      `gorm:"column:is_published" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Devotional) TableName() string {
	return "devotional"
}

func (d *Devotional) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
