package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/admaagape/studyapi/internal/availability"
	"github.com/admaagape/studyapi/internal/generr"
)

func devotionalJSON(title string) string {
	body := strings.Repeat("Meditação profunda sobre a palavra. ", 20)
	raw, _ := json.Marshal(map[string]string{
		"title":      title,
		"reference":  "Sl 23:1",
		"verse_text": "O Senhor é o meu pastor.",
		"body":       body,
		"prayer":     "Senhor, guia-nos neste dia.",
	})
	return string(raw)
}

func newDevotionalService(t *testing.T, ai *fakeAI, today time.Time) DevotionalService {
	t.Helper()
	svc := NewDevotionalService(testLogger(t), testStore(t), ai, testPublisher(t), defaultTuning())
	impl := svc.(*devotionalService)
	impl.now = func() time.Time { return today }
	impl.pickTheme = func(themes []string) string { return themes[0] }
	return svc
}

func jsonHandler(payload func() string) func(string, any) error {
	return func(_ string, out any) error {
		return json.Unmarshal([]byte(payload()), out)
	}
}

func TestDevotionalWindowGating(t *testing.T) {
	today := time.Date(2024, 6, 1, 15, 30, 0, 0, time.UTC)
	ai := &fakeAI{jsonFn: jsonHandler(func() string { return devotionalJSON("Dia novo") })}
	svc := newDevotionalService(t, ai, today)
	ctx := context.Background()

	cases := []struct {
		name    string
		dateKey string
		want    availability.State
	}{
		{"tomorrow locked", "2024-06-02", availability.Locked},
		{"retention boundary expired", "2023-06-01", availability.Expired},
		{"oldest available", "2023-06-02", availability.Available},
		{"today available", "2024-06-01", availability.Available},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := svc.Get(ctx, tc.dateKey)
			if err != nil {
				t.Fatalf("Get: %v", err)
			}
			if res.State != tc.want {
				t.Errorf("state = %s, want %s", res.State, tc.want)
			}
			if tc.want != availability.Available && res.Devotional != nil {
				t.Errorf("out-of-window date must not return a record")
			}
		})
	}

	// Out-of-window dates must never reach the generator: 2 in-window cases,
	// one lazy generation each.
	if len(ai.prompts) != 2 {
		t.Errorf("generator called %d times, want 2", len(ai.prompts))
	}
}

func TestDevotionalLazyGenerationAndCache(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{jsonFn: jsonHandler(func() string { return devotionalJSON("Primeira") })}
	svc := newDevotionalService(t, ai, today)
	ctx := context.Background()

	res, err := svc.Get(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("first Get: %v", err)
	}
	if res.Devotional == nil || res.Devotional.Title != "Primeira" {
		t.Fatalf("lazy generation did not persist")
	}
	if !res.Devotional.IsPublished {
		t.Errorf("generated devotional must be published")
	}
	if !strings.Contains(ai.prompts[0], "TEMA CENTRAL: santidade") {
		t.Errorf("lazy generation must carry a theme, got %q", ai.prompts[0])
	}
	if !strings.Contains(ai.prompts[0], "01/06/2024") {
		t.Errorf("prompt missing display date")
	}

	// Second read is a cache hit.
	ai.jsonFn = jsonHandler(func() string { return devotionalJSON("Segunda") })
	res, err = svc.Get(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("second Get: %v", err)
	}
	if res.Devotional.Title != "Primeira" {
		t.Errorf("cache hit regenerated content")
	}
	if len(ai.prompts) != 1 {
		t.Errorf("generator called %d times, want 1", len(ai.prompts))
	}
}

func TestDevotionalRegenerate(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{jsonFn: jsonHandler(func() string { return devotionalJSON("Original") })}
	svc := newDevotionalService(t, ai, today)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "2024-06-01"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ai.jsonFn = jsonHandler(func() string { return devotionalJSON("Sob medida") })
	regen, err := svc.Regenerate(ctx, "2024-06-01", "Fale sobre gratidão")
	if err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	if regen.Title != "Sob medida" {
		t.Errorf("title = %q", regen.Title)
	}
	if !strings.Contains(ai.prompts[1], "Fale sobre gratidão") {
		t.Errorf("custom instruction missing from prompt")
	}

	res, err := svc.Get(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("Get after regenerate: %v", err)
	}
	if res.Devotional.Title != "Sob medida" {
		t.Errorf("regeneration did not replace the record")
	}

	if _, err := svc.Regenerate(ctx, "2024-06-05", "futuro"); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("locked date regenerate: err = %v, want validation", err)
	}
	if _, err := svc.Regenerate(ctx, "2024-06-01", "   "); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("blank instruction: err = %v, want validation", err)
	}
}

func TestDevotionalRejectsBadDateAndEmptyContent(t *testing.T) {
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ai := &fakeAI{jsonFn: jsonHandler(func() string {
		raw, _ := json.Marshal(map[string]string{"title": "", "body": "x"})
		return string(raw)
	})}
	svc := newDevotionalService(t, ai, today)
	ctx := context.Background()

	if _, err := svc.Get(ctx, "June 1st"); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("bad date key: err = %v, want validation", err)
	}
	if _, err := svc.Get(ctx, "2024-06-01"); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("empty generation: err = %v, want validation", err)
	}

	impl := svc.(*devotionalService)
	stored, err := impl.store.GetDevotional(ctx, "2024-06-01")
	if err != nil {
		t.Fatalf("store read: %v", err)
	}
	if stored != nil {
		t.Errorf("failed generation must not persist")
	}
}
