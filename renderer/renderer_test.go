package renderer

import (
	"regexp"
	"strings"
	"testing"

	"github.com/etnz/bookstore"
	"github.com/google/go-cmp/cmp"
)

func mustDecode(t *testing.T, csv string) *bookstore.Inventory {
	t.Helper()
	inv, err := bookstore.DecodeInventory(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("DecodeInventory() unexpected error: %v", err)
	}
	return inv
}

const sampleCSV = `Title,Author,Genre,Cost,Stock
Dune,Frank Herbert,"Sci-Fi, Adventure",9.99,4
Emma,Jane Austen,Romance,7.50,0
Neuromancer,William Gibson,Sci-Fi | Cyberpunk,12.00,2
`

func TestListingMarkdown(t *testing.T) {
	inv := mustDecode(t, sampleCSV)
	got := ListingMarkdown(bookstore.NewListing(inv, 5))
	want := `# Books

| Title | Author | Genre | Cost |
|:---|:---|:---|---:|
| Dune | Frank Herbert | Sci-Fi, Adventure | 9.99 |
| Emma | Jane Austen | Romance | 7.50 |
| Neuromancer | William Gibson | Sci-Fi \| Cyberpunk | 12.00 |

Showing 3 of 3 rows.
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListingMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestListingMarkdown_Limit(t *testing.T) {
	inv := mustDecode(t, sampleCSV)
	got := ListingMarkdown(bookstore.NewListing(inv, 1))
	if !strings.Contains(got, "Showing 1 of 3 rows.") {
		t.Errorf("ListingMarkdown() = %q, want the count line", got)
	}
	if strings.Contains(got, "Emma") {
		t.Errorf("ListingMarkdown() = %q, want only the first book", got)
	}
}

func TestListingMarkdown_Empty(t *testing.T) {
	got := ListingMarkdown(bookstore.NewListing(bookstore.NewInventory(""), 20))
	want := "# Books\n\nNo data available.\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ListingMarkdown() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	inv := mustDecode(t, `Title,Author,Genre,Cost,Stock
A,X,G,10,2
B,X,G,20,3
C,X,G,bad,1
D,X,G,5,
`)
	got := SummaryMarkdown(bookstore.NewSummary(inv, "USD"))
	for _, want := range []string{"Summary Report", "Metric", "Total Value of the Books", "$80.00", "$15.00", "Skipped 2 bad rows."} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() = %q, want it to contain %q", got, want)
		}
	}

	if strings.Contains(got, "METRIC") {
		t.Errorf("SummaryMarkdown() = %q, want the header as written", got)
	}

	clean := mustDecode(t, "Title,Author,Genre,Cost,Stock\nA,X,G,10,2\n")
	if got := SummaryMarkdown(bookstore.NewSummary(clean, "USD")); strings.Contains(got, "Skipped") {
		t.Errorf("SummaryMarkdown() = %q, want no skipped line", got)
	}
}

func TestGenresMarkdown(t *testing.T) {
	inv := mustDecode(t, `Title,Author,Genre,Cost,Stock
A,X,Fiction,1,1
A,X,Fiction,1,1
B,X,Fiction,1,1
C,X,Drama,1,1
`)
	got := GenresMarkdown(bookstore.NewGenreReport(inv))
	fiction := regexp.MustCompile(`\|\s*Fiction\s*\|\s*2\s*\|`).FindStringIndex(got)
	drama := regexp.MustCompile(`\|\s*Drama\s*\|\s*1\s*\|`).FindStringIndex(got)
	if fiction == nil || drama == nil || fiction[0] > drama[0] {
		t.Errorf("GenresMarkdown() = %q, want Fiction (2) before Drama (1)", got)
	}
	if !regexp.MustCompile(`\|\s*Genre\s*\|\s*Number of Titles\s*\|`).MatchString(got) {
		t.Errorf("GenresMarkdown() = %q, want the header as written", got)
	}
}

func TestAuthorLines(t *testing.T) {
	inv := mustDecode(t, sampleCSV)
	got := AuthorLines(bookstore.NewAuthorIndex(inv))
	want := `Frank Herbert - "Dune"
Jane Austen - "Emma"
William Gibson - "Neuromancer"
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AuthorLines() mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorTree(t *testing.T) {
	inv := mustDecode(t, `Title,Author,Genre,Cost,Stock
Emma,Jane Austen,Romance,1,1
Dune,Frank Herbert,Sci-Fi,1,1
Persuasion,Jane Austen,Romance,1,1
`)
	got := AuthorTree(bookstore.NewAuthorIndex(inv))
	for _, want := range []string{"Authors", "Frank Herbert", "Jane Austen", "Emma", "Persuasion"} {
		if !strings.Contains(got, want) {
			t.Errorf("AuthorTree() = %q, want it to contain %q", got, want)
		}
	}
	if strings.Index(got, "Frank Herbert") > strings.Index(got, "Jane Austen") {
		t.Errorf("AuthorTree() = %q, want authors in order", got)
	}
}

func TestBarChart(t *testing.T) {
	inv := mustDecode(t, `Title,Author,Genre,Cost,Stock
A,X,"SF, Thr",1,1
B,X,Thr,1,1
`)
	got := BarChart(bookstore.NewGenreDistribution(inv))
	want := `Number of Books in Each Genre

2 │     ██
1 │ ██  ██
  └─────────
    S   T
    F   h
        r
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BarChart() mismatch (-want +got):\n%s", diff)
	}
}

func TestBarChart_Empty(t *testing.T) {
	got := BarChart(bookstore.NewGenreDistribution(bookstore.NewInventory("")))
	if !strings.Contains(got, "No genres to chart.") {
		t.Errorf("BarChart() = %q", got)
	}
}
