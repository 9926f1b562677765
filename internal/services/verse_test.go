package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/admaagape/studyapi/internal/generr"
)

func dictionaryJSON(original string) string {
	raw, _ := json.Marshal(map[string]any{
		"hebrewGreekText": original,
		"phoneticText":    "bereshit bara",
		"words": []map[string]string{{
			"original":        original,
			"transliteration": "bereshit",
			"portuguese":      "no princípio",
			"polysemy":        "Início absoluto; cabeça de uma sequência.",
			"etymology":       "De rosh, cabeça.",
			"grammar":         "Substantivo feminino singular com preposição.",
		}},
	})
	return string(raw)
}

func TestVerseCommentaryCachedThenRegenerated(t *testing.T) {
	ai := &fakeAI{textResult: longText("comentario-1", 10)}
	svc := NewVerseService(testLogger(t), testStore(t), ai, testPublisher(t), defaultTuning())
	ctx := context.Background()

	first, err := svc.Commentary(ctx, "Gênesis", 1, 1, "No princípio criou Deus os céus e a terra.", false)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.VerseKey != "gênesis_1_1" {
		t.Errorf("verse key = %q", first.VerseKey)
	}

	// Cache hit: the generator must not run again.
	ai.textResult = longText("comentario-2", 10)
	second, err := svc.Commentary(ctx, "Gênesis", 1, 1, "No princípio criou Deus os céus e a terra.", false)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("cache hit produced a new record")
	}
	if len(ai.prompts) != 1 {
		t.Errorf("generator called %d times, want 1", len(ai.prompts))
	}

	// Forced regeneration replaces the record under the same key.
	third, err := svc.Commentary(ctx, "Gênesis", 1, 1, "No princípio criou Deus os céus e a terra.", true)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if third.ID == first.ID {
		t.Errorf("regeneration kept the old record")
	}
	if !strings.Contains(third.CommentaryText, "comentario-2") {
		t.Errorf("regeneration kept the old text")
	}
}

func TestVerseDictionaryLanguageFollowsTestament(t *testing.T) {
	cases := []struct {
		book string
		want string
	}{
		{"Gênesis", "HEBRAICO"},
		{"João", "GREGO"},
	}
	for _, tc := range cases {
		t.Run(tc.book, func(t *testing.T) {
			ai := &fakeAI{jsonFn: func(_ string, out any) error {
				return json.Unmarshal([]byte(dictionaryJSON("בְּרֵאשִׁית")), out)
			}}
			svc := NewVerseService(testLogger(t), testStore(t), ai, testPublisher(t), defaultTuning())

			entry, err := svc.Dictionary(context.Background(), tc.book, 1, 1, "texto do versículo", false)
			if err != nil {
				t.Fatalf("Dictionary: %v", err)
			}
			if len(entry.KeyWords) != 1 {
				t.Fatalf("key words = %d, want 1", len(entry.KeyWords))
			}
			if !strings.Contains(ai.prompts[0], tc.want) {
				t.Errorf("prompt missing language %s", tc.want)
			}
		})
	}
}

func TestVerseDictionaryRejectsEmptyAnalysis(t *testing.T) {
	ai := &fakeAI{jsonFn: func(_ string, out any) error {
		return json.Unmarshal([]byte(`{"hebrewGreekText":"x","phoneticText":"y","words":[]}`), out)
	}}
	svc := NewVerseService(testLogger(t), testStore(t), ai, testPublisher(t), defaultTuning())

	if _, err := svc.Dictionary(context.Background(), "Gênesis", 1, 1, "texto", false); !errors.Is(err, generr.ErrValidation) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestVerseInputValidation(t *testing.T) {
	svc := NewVerseService(testLogger(t), testStore(t), &fakeAI{}, testPublisher(t), defaultTuning())
	ctx := context.Background()

	if _, err := svc.Commentary(ctx, "Gênesis", 1, 0, "texto", false); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("zero verse: err = %v", err)
	}
	if _, err := svc.Commentary(ctx, "Gênesis", 1, 1, "  ", false); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("blank verse text: err = %v", err)
	}
	if _, err := svc.Dictionary(ctx, "Nárnia", 1, 1, "texto", false); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("unknown book: err = %v", err)
	}
}

func TestChapterEpigraphGeneratedOnce(t *testing.T) {
	calls := 0
	ai := &fakeAI{jsonFn: func(_ string, out any) error {
		calls++
		return json.Unmarshal([]byte(`{"title":"A Criação","subtitle":"O princípio de todas as coisas"}`), out)
	}}
	svc := NewChapterService(testLogger(t), testStore(t), ai, testPublisher(t))
	ctx := context.Background()

	first, err := svc.Epigraph(ctx, "Gênesis", 1)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	if first.Title != "A Criação" || first.ChapterKey != "gênesis_1" {
		t.Errorf("unexpected epigraph: %+v", first)
	}

	second, err := svc.Epigraph(ctx, "Gênesis", 1)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("epigraph regenerated on second access")
	}
	if calls != 1 {
		t.Errorf("generator called %d times, want 1", calls)
	}
}
