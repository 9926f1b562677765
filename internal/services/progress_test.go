package services

import (
	"context"
	"errors"
	"testing"

	"github.com/admaagape/studyapi/internal/generr"
)

func TestProgressMarkAndUnmark(t *testing.T) {
	svc := NewProgressService(testLogger(t), testStore(t), defaultTuning())
	ctx := context.Background()

	p, err := svc.MarkChapter(ctx, "ana@example.com", "Ana", "Gênesis", 1, true)
	if err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if p.TotalChapters != 1 || !p.HasRead("gênesis_1") {
		t.Errorf("first mark not recorded: %+v", p)
	}

	// Marking the same chapter twice must not double-count.
	p, err = svc.MarkChapter(ctx, "ana@example.com", "Ana", "Gênesis", 1, true)
	if err != nil {
		t.Fatalf("repeat mark: %v", err)
	}
	if p.TotalChapters != 1 {
		t.Errorf("repeat mark double-counted: %d", p.TotalChapters)
	}

	p, err = svc.MarkChapter(ctx, "ana@example.com", "Ana", "Êxodo", 2, true)
	if err != nil {
		t.Fatalf("second mark: %v", err)
	}
	if p.TotalChapters != 2 || p.LastBook != "Êxodo" || p.LastChapter != 2 {
		t.Errorf("aggregates wrong: %+v", p)
	}

	p, err = svc.MarkChapter(ctx, "ana@example.com", "Ana", "Gênesis", 1, false)
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if p.TotalChapters != 1 || p.HasRead("gênesis_1") {
		t.Errorf("unmark not applied: %+v", p)
	}
}

func TestProgressUnmarkWithoutRecord(t *testing.T) {
	svc := NewProgressService(testLogger(t), testStore(t), defaultTuning())
	p, err := svc.MarkChapter(context.Background(), "novo@example.com", "Novo", "Gênesis", 1, false)
	if err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if p != nil {
		t.Errorf("unmark without a record must be a no-op, got %+v", p)
	}
}

func TestProgressGetAndValidation(t *testing.T) {
	svc := NewProgressService(testLogger(t), testStore(t), defaultTuning())
	ctx := context.Background()

	p, err := svc.Get(ctx, "ninguem@example.com")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p != nil {
		t.Errorf("unknown member must yield nil, got %+v", p)
	}

	if _, err := svc.Get(ctx, "  "); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("blank email: err = %v", err)
	}
	if _, err := svc.MarkChapter(ctx, "a@b.c", "", "Gênesis", 1, true); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("blank name: err = %v", err)
	}
	if _, err := svc.MarkChapter(ctx, "a@b.c", "Ana", "Gênesis", 99, true); !errors.Is(err, generr.ErrValidation) {
		t.Errorf("bad chapter: err = %v", err)
	}
}

func TestProgressLeaderboardOrder(t *testing.T) {
	svc := NewProgressService(testLogger(t), testStore(t), defaultTuning())
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		if _, err := svc.MarkChapter(ctx, "top@example.com", "Top", "Salmos", i, true); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	if _, err := svc.MarkChapter(ctx, "solo@example.com", "Solo", "Rute", 1, true); err != nil {
		t.Fatalf("mark: %v", err)
	}

	board, err := svc.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("Leaderboard: %v", err)
	}
	if len(board) != 2 {
		t.Fatalf("entries = %d, want 2", len(board))
	}
	if board[0].UserEmail != "top@example.com" || board[0].TotalChapters != 3 {
		t.Errorf("wrong ranking head: %+v", board[0])
	}
}
