// Package keys derives the stable string identities every stored record is
// keyed by. Same inputs always produce the same key.
package keys

import (
	"fmt"
	"strings"
	"time"
)

// Chapter returns the chapter key: lowercase book name, spaces replaced by
// underscores, followed by the chapter number ("1 samuel", 3 -> "1_samuel_3").
func Chapter(book string, chapter int) string {
	normalized := strings.ReplaceAll(strings.ToLower(book), " ", "_")
	return fmt.Sprintf("%s_%d", normalized, chapter)
}

// Verse returns the verse key: the chapter key with the verse number appended.
func Verse(book string, chapter, verse int) string {
	return fmt.Sprintf("%s_%d", Chapter(book, chapter), verse)
}

// Date returns the date key for daily content in fixed YYYY-MM-DD form.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a date key back to a day-granularity time.
func ParseDate(key string) (time.Time, error) {
	return time.Parse("2006-01-02", key)
}
