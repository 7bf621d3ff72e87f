package formatter

import (
	"reflect"
	"testing"
)

func TestSectionsBasicSplit(t *testing.T) {
	got := Sections("Type: Permit\nDetails: Renew yearly")
	want := []Section{
		{Title: "Type", Body: "Permit"},
		{Title: "Details", Body: "Renew yearly"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %#v, want %#v", got, want)
	}
}

func TestSectionsStripsMarkupAndEmphasis(t *testing.T) {
	got := Sections("**Type**: <b>Permit</b>")
	want := []Section{{Title: "Type", Body: "Permit"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %#v, want %#v", got, want)
	}
}

func TestSectionsMultiLineBody(t *testing.T) {
	input := "Requirements: bring two photos\nand a copy of your lease\n\nDeadline: 30 June"
	got := Sections(input)
	want := []Section{
		{Title: "Requirements", Body: "bring two photos and a copy of your lease"},
		{Title: "Deadline", Body: "30 June"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %#v, want %#v", got, want)
	}
}

func TestSectionsBulletLinesAreBody(t *testing.T) {
	input := "Next Steps: do the following\n* visit the office: room 4\n- bring ID: passport or license"
	got := Sections(input)
	if len(got) != 1 {
		t.Fatalf("expected 1 section, got %d: %#v", len(got), got)
	}
	if got[0].Title != "Next Steps" {
		t.Fatalf("expected title Next Steps, got %q", got[0].Title)
	}
	want := "do the following visit the office: room 4 bring ID: passport or license"
	if got[0].Body != want {
		t.Fatalf("body = %q, want %q", got[0].Body, want)
	}
}

func TestSectionsNoHeadersReturnsEmpty(t *testing.T) {
	if got := Sections("just a plain paragraph with no labels at all"); got != nil {
		t.Fatalf("expected nil for header-less input, got %#v", got)
	}
	if got := Sections(""); got != nil {
		t.Fatalf("expected nil for empty input, got %#v", got)
	}
}

// Text before the first header is deliberately preserved as a Summary
// section rather than silently dropped.
func TestSectionsPreambleBecomesSummary(t *testing.T) {
	input := "This notice concerns your water connection.\nType: Disconnection Notice\nDeadline: 15 days"
	got := Sections(input)
	want := []Section{
		{Title: "Summary", Body: "This notice concerns your water connection."},
		{Title: "Type", Body: "Disconnection Notice"},
		{Title: "Deadline", Body: "15 days"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Sections() = %#v, want %#v", got, want)
	}
}

func TestSectionsOrderPreserved(t *testing.T) {
	input := "Zeta: one\nAlpha: two\nMu: three"
	got := Sections(input)
	titles := make([]string, 0, len(got))
	for _, s := range got {
		titles = append(titles, s.Title)
	}
	want := []string{"Zeta", "Alpha", "Mu"}
	if !reflect.DeepEqual(titles, want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
}
