package pagination

import (
	"strings"
	"testing"
)

func longPage(prefix string) string {
	return prefix + strings.Repeat(" conteúdo do estudo", 5)
}

func TestPaginateSplitsOnDelimiter(t *testing.T) {
	a := longPage("A")
	b := longPage("B")
	pages := Paginate(a+Delimiter+b, 50)
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if pages[0] != a || pages[1] != b {
		t.Fatalf("pages not preserved in order: %q", pages)
	}
}

func TestPaginateDiscardsTrailingEmptyFragment(t *testing.T) {
	a := longPage("A")
	b := longPage("B")
	pages := Paginate(a+Delimiter+b+Delimiter, 50)
	if len(pages) != 2 {
		t.Fatalf("trailing delimiter should produce 2 pages, got %d", len(pages))
	}
}

func TestPaginateDiscardsShortFragments(t *testing.T) {
	a := longPage("A")
	pages := Paginate(a+Delimiter+"curto", 50)
	if len(pages) != 1 {
		t.Fatalf("short fragment should be dropped, got %d pages", len(pages))
	}
	if pages[0] != a {
		t.Fatalf("surviving page = %q, want the long one", pages[0])
	}
}

func TestPaginateNoDelimiterSinglePage(t *testing.T) {
	a := longPage("A")
	pages := Paginate(a, 50)
	if len(pages) != 1 || pages[0] != a {
		t.Fatalf("single page expected, got %q", pages)
	}
}

func TestPaginateTooShortStillReturnsOnePage(t *testing.T) {
	pages := Paginate("  curto  ", 50)
	if len(pages) != 1 {
		t.Fatalf("entirely-short input must still yield one page, got %d", len(pages))
	}
	if pages[0] != "curto" {
		t.Fatalf("fallback page = %q, want trimmed original", pages[0])
	}
}

func TestPaginateEmpty(t *testing.T) {
	if pages := Paginate("", 50); pages != nil {
		t.Fatalf("empty input should yield no pages, got %q", pages)
	}
	if pages := Paginate("undefined", 50); pages != nil {
		t.Fatalf("placeholder input should yield no pages, got %q", pages)
	}
}

func TestDeletePage(t *testing.T) {
	a, b, c := longPage("A"), longPage("B"), longPage("C")
	text := a + Delimiter + b + Delimiter + c

	rejoined := DeletePage(text, 1, 50)
	pages := Paginate(rejoined, 50)
	if len(pages) != 2 || pages[0] != a || pages[1] != c {
		t.Fatalf("after deleting index 1, pages = %q, want [A C]", pages)
	}
}

func TestDeletePageOutOfRange(t *testing.T) {
	a := longPage("A")
	if got := DeletePage(a, 5, 50); got != a {
		t.Fatalf("out-of-range delete must be a no-op, got %q", got)
	}
	if got := DeletePage(a, -1, 50); got != a {
		t.Fatalf("negative index delete must be a no-op, got %q", got)
	}
}
