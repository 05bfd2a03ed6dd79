package locale

import "testing"

func TestParseCompactForm(t *testing.T) {
	tag, err := Parse("enUS")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.String(); got != "en-US" {
		t.Fatalf("unexpected tag: %q", got)
	}
}

func TestParseHyphenatedForm(t *testing.T) {
	tag, err := Parse("es-ES")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := tag.String(); got != "es-ES" {
		t.Fatalf("unexpected tag: %q", got)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not a locale"); err == nil {
		t.Fatal("expected error")
	}
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error for empty value")
	}
}

func TestDisplayName(t *testing.T) {
	if name := DisplayName("enUS"); name != "American English" {
		t.Fatalf("unexpected display name: %q", name)
	}
	if name := DisplayName("???"); name != "???" {
		t.Fatalf("expected raw fallback, got %q", name)
	}
}
