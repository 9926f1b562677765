package keys

import (
	"testing"
	"time"
)

func TestChapterKey(t *testing.T) {
	cases := []struct {
		name    string
		book    string
		chapter int
		want    string
	}{
		{name: "single_word", book: "Gênesis", chapter: 1, want: "gênesis_1"},
		{name: "numbered_book", book: "1 Samuel", chapter: 3, want: "1_samuel_3"},
		{name: "multi_word", book: "2 Tessalonicenses", chapter: 2, want: "2_tessalonicenses_2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Chapter(tc.book, tc.chapter)
			if got != tc.want {
				t.Fatalf("Chapter(%q, %d)=%q, want %q", tc.book, tc.chapter, got, tc.want)
			}
		})
	}
}

func TestVerseKeyExtendsChapterKey(t *testing.T) {
	got := Verse("1 Reis", 17, 4)
	if got != "1_reis_17_4" {
		t.Fatalf("Verse=%q, want %q", got, "1_reis_17_4")
	}
	if got[:len(Chapter("1 Reis", 17))] != Chapter("1 Reis", 17) {
		t.Fatalf("verse key %q does not extend chapter key %q", got, Chapter("1 Reis", 17))
	}
}

func TestKeyDeterminism(t *testing.T) {
	for i := 0; i < 10; i++ {
		if Chapter("Apocalipse", 22) != "apocalipse_22" {
			t.Fatal("chapter key is not stable across calls")
		}
		if Verse("João", 3, 16) != "joão_3_16" {
			t.Fatal("verse key is not stable across calls")
		}
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)
	if got := Date(d); got != "2024-06-01" {
		t.Fatalf("Date=%q, want 2024-06-01", got)
	}
	back, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if Date(back) != "2024-06-01" {
		t.Fatalf("round trip lost the day: %q", Date(back))
	}
}

func TestCanonShape(t *testing.T) {
	if len(Canon) != 66 {
		t.Fatalf("canon has %d books, want 66", len(Canon))
	}
	total := 0
	for _, b := range Canon {
		total += b.Chapters
	}
	if total != TotalChapters {
		t.Fatalf("canon chapter sum %d, want %d", total, TotalChapters)
	}
	if !IsOldTestament("Gênesis") {
		t.Fatal("Gênesis should be old testament")
	}
	if IsOldTestament("Apocalipse") {
		t.Fatal("Apocalipse should not be old testament")
	}
	if IsOldTestament("Nárnia") {
		t.Fatal("unknown book should not classify as old testament")
	}
}
