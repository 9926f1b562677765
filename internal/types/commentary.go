package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Commentary is the generated per-verse commentary. Wholesale collection:
// regeneration deletes the old record and creates a new one under the same
// verse key.
type Commentary struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Book           string    `gorm:"not null;column:book" json:"book"`
	Chapter        int       `gorm:"not null;column:chapter" json:"chapter"`
	Verse          int       `gorm:"not null;column:verse" json:"verse"`
	VerseKey       string    `gorm:"index;not null;column:verse_key" json:"verse_key"`
	CommentaryText string    `gorm:"type:text;not null;column:commentary_text" json:"commentary_text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Commentary) TableName() string {
	return "commentary"
}

func (c *Commentary) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
