// Package render classifies a page of stored content into semantic blocks
// for the client to style: headings, question callouts and paragraphs, with
// inline emphasis spans resolved. It decides structure only; all visual
// formatting belongs to the presentation layer.
package render

import (
	"regexp"
	"strings"
	"unicode"
)

type BlockKind string

const (
	BlockHeading   BlockKind = "heading"
	BlockQuestion  BlockKind = "question"
	BlockParagraph BlockKind = "paragraph"
)

type SpanStyle string

const (
	SpanPlain  SpanStyle = "plain"
	SpanStrong SpanStyle = "strong"
	SpanLight  SpanStyle = "light"
)

// Span is a run of text with one inline style.
type Span struct {
	Style SpanStyle `json:"style"`
	Text  string    `json:"text"`
}

// Block is one classified line of a page.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Text  string    `json:"text"`
	Spans []Span    `json:"spans"`
}

const (
	headingMarker    = "#"
	questionPrefix   = "PERGUNTA:"
	headingMaxRunes  = 60
	headingMinRunes  = 5
)

// ClassifyPage splits a page into non-empty lines and classifies each.
func ClassifyPage(page string) []Block {
	lines := strings.Split(page, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		blocks = append(blocks, classifyLine(trimmed))
	}
	return blocks
}

func classifyLine(line string) Block {
	if isHeading(line) {
		title := strings.TrimSpace(strings.ReplaceAll(line, headingMarker, ""))
		return Block{Kind: BlockHeading, Text: title, Spans: []Span{{Style: SpanPlain, Text: title}}}
	}
	if strings.HasSuffix(line, "?") || strings.HasPrefix(line, questionPrefix) {
		return Block{Kind: BlockQuestion, Text: line, Spans: ParseInline(line)}
	}
	return Block{Kind: BlockParagraph, Text: line, Spans: ParseInline(line)}
}

// isHeading: explicit marker, or a short all-upper-case line. Length is
// measured in runes so accented titles classify the same as plain ones.
func isHeading(line string) bool {
	if strings.HasPrefix(line, headingMarker) {
		return true
	}
	runes := []rune(line)
	if len(runes) <= headingMinRunes || len(runes) >= headingMaxRunes {
		return false
	}
	hasLetter := false
	for _, r := range runes {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// strong first so "**" is never half-consumed as light emphasis
var inlinePattern = regexp.MustCompile(`\*\*.*?\*\*|\*.*?\*`)

// ParseInline resolves **strong** and *light* emphasis into styled spans.
// Unmatched delimiters are left as literal text.
func ParseInline(text string) []Span {
	matches := inlinePattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Style: SpanPlain, Text: text}}
	}
	spans := make([]Span, 0, len(matches)*2+1)
	cursor := 0
	for _, m := range matches {
		if m[0] > cursor {
			spans = append(spans, Span{Style: SpanPlain, Text: text[cursor:m[0]]})
		}
		token := text[m[0]:m[1]]
		switch {
		case strings.HasPrefix(token, "**") && strings.HasSuffix(token, "**") && len(token) >= 4:
			spans = append(spans, Span{Style: SpanStrong, Text: token[2 : len(token)-2]})
		default:
			spans = append(spans, Span{Style: SpanLight, Text: token[1 : len(token)-1]})
		}
		cursor = m[1]
	}
	if cursor < len(text) {
		spans = append(spans, Span{Style: SpanPlain, Text: text[cursor:]})
	}
	return spans
}
