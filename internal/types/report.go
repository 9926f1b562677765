package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Report is a member-filed issue against generated content. Append-only from
// this subsystem's perspective.
type Report struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName    string    `gorm:"column:user_name" json:"user_name"`
	ContentType string    `gorm:"column:content_type" json:"content_type"`
	Reference   string    `gorm:"column:reference" json:"reference"`
	Description string    `gorm:"type:text;not null;column:description" json:"description"`
	Status      string    `gorm:"column:status;default:pending" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Report) TableName() string {
	return "report"
}

func (r *Report) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
