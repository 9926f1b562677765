package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DictionaryWord is one lexical entry of a verse analysis.
type DictionaryWord struct {
	Original        string `json:"original"`
	Transliteration string `json:"transliteration"`
	Portuguese      string `json:"portuguese"`
	Polysemy        string `json:"polysemy"`
	Etymology       string `json:"etymology"`
	Grammar         string `json:"grammar"`
}

// DictionaryEntry is the generated original-language analysis of a verse.
// Wholesale collection keyed by verse key.
type DictionaryEntry struct {
	ID              uuid.UUID                                 `gorm:"type:uuid;primaryKey" json:"id"`
	VerseKey        string                                    `gorm:"index;not null;column:verse_key" json:"verse_key"`
	Book            string                                    `gorm:"not null;column:book" json:"book"`
	Chapter         int                                       `gorm:"not null;column:chapter" json:"chapter"`
	Verse           int                                       `gorm:"not null;column:verse" json:"verse"`
	OriginalText    string                                    `gorm:"type:text;column:original_text" json:"original_text"`
	Transliteration string                                    `gorm:"type:text;column:transliteration" json:"transliteration"`
	KeyWords        datatypes.JSONSlice[DictionaryWord]       `gorm:"column:key_words" json:"key_words"`
	CreatedAt       time.Time                                 `json:"created_at"`
	UpdatedAt       time.Time                                 `json:"updated_at"`
}

func (DictionaryEntry) TableName() string {
	return "dictionary"
}

func (d *DictionaryEntry) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
