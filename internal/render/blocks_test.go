package render

import (
	"reflect"
	"testing"
)

func TestClassifyPageKinds(t *testing.T) {
	cases := []struct {
		name string
		line string
		want BlockKind
	}{
		{name: "marker_heading", line: "### A CRIAÇÃO DO MUNDO", want: BlockHeading},
		{name: "uppercase_heading", line: "A QUEDA DO HOMEM", want: BlockHeading},
		{name: "uppercase_accented_heading", line: "A REDENÇÃO", want: BlockHeading},
		{name: "question", line: "O que Deus criou no primeiro dia?", want: BlockQuestion},
		{name: "question_prefix", line: "PERGUNTA: explique o verso 3.", want: BlockQuestion},
		{name: "paragraph", line: "No princípio, o texto nos apresenta o Criador.", want: BlockParagraph},
		{name: "short_uppercase_is_paragraph", line: "AMÉM", want: BlockParagraph},
		{name: "long_uppercase_is_paragraph", line: "ESTA LINHA MAIÚSCULA É LONGA DEMAIS PARA SER UM TÍTULO DE SEÇÃO AQUI", want: BlockParagraph},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocks := ClassifyPage(tc.line)
			if len(blocks) != 1 {
				t.Fatalf("got %d blocks, want 1", len(blocks))
			}
			if blocks[0].Kind != tc.want {
				t.Fatalf("ClassifyPage(%q) kind=%s, want %s", tc.line, blocks[0].Kind, tc.want)
			}
		})
	}
}

func TestClassifyPageStripsHeadingMarkers(t *testing.T) {
	blocks := ClassifyPage("### O DILÚVIO")
	if blocks[0].Text != "O DILÚVIO" {
		t.Fatalf("heading text = %q, want markers stripped", blocks[0].Text)
	}
}

func TestClassifyPageSkipsBlankLines(t *testing.T) {
	blocks := ClassifyPage("Primeiro parágrafo.\n\n   \nSegundo parágrafo.")
	if len(blocks) != 2 {
		t.Fatalf("got %d blocks, want 2", len(blocks))
	}
}

func TestParseInlineEmphasis(t *testing.T) {
	got := ParseInline("A palavra **bara** significa *criar do nada* aqui.")
	want := []Span{
		{Style: SpanPlain, Text: "A palavra "},
		{Style: SpanStrong, Text: "bara"},
		{Style: SpanPlain, Text: " significa "},
		{Style: SpanLight, Text: "criar do nada"},
		{Style: SpanPlain, Text: " aqui."},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("spans = %#v, want %#v", got, want)
	}
}

func TestParseInlineUnmatchedDelimiterIsLiteral(t *testing.T) {
	got := ParseInline("um *asterisco solto")
	if len(got) != 1 || got[0].Style != SpanPlain || got[0].Text != "um *asterisco solto" {
		t.Fatalf("unmatched delimiter must stay literal, got %#v", got)
	}
}

func TestParseInlinePlain(t *testing.T) {
	got := ParseInline("sem ênfase alguma")
	if len(got) != 1 || got[0].Style != SpanPlain {
		t.Fatalf("plain text should be one plain span, got %#v", got)
	}
}
