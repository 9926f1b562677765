// Package pagination splits accumulated long-form content into renderable
// pages. Pages are derived, never stored: every read recomputes them from the
// accumulated text.
package pagination

import "strings"

// Delimiter is the literal page-break marker the generation pipeline inserts
// between parts. It must match what is stored, so it is not configurable.
const Delimiter = `<hr class="page-break">`

// DefaultMinPageChars is the observed threshold below which a fragment is
// treated as a generation artifact rather than a real page.
const DefaultMinPageChars = 50

// Paginate splits text on the page-break delimiter, trims each fragment and
// drops fragments at or below minChars. If nothing survives the filter the
// trimmed original text is returned as a single page, so content is never
// totally hidden. Empty or placeholder input yields no pages at all. Order is
// preserved; pages are 0-indexed.
func Paginate(text string, minChars int) []string {
	if minChars <= 0 {
		minChars = DefaultMinPageChars
	}
	trimmed := clean(text)
	if trimmed == "" {
		return nil
	}
	raw := strings.Split(text, Delimiter)
	pages := make([]string, 0, len(raw))
	for _, fragment := range raw {
		p := clean(fragment)
		if len(p) > minChars {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		return []string{trimmed}
	}
	return pages
}

// DeletePage removes the page at index from the paginated view of text and
// rejoins the remainder with the delimiter. Out-of-range indexes return the
// input unchanged. This is the only operation that shrinks accumulated text.
func DeletePage(text string, index, minChars int) string {
	pages := Paginate(text, minChars)
	if index < 0 || index >= len(pages) {
		return text
	}
	remaining := append(append([]string{}, pages[:index]...), pages[index+1:]...)
	return strings.Join(remaining, Delimiter)
}

// clean trims a fragment and discards the "undefined" placeholder some failed
// generations used to leave behind.
func clean(text string) string {
	t := strings.TrimSpace(text)
	if t == "undefined" {
		return ""
	}
	return t
}
