package invoice

import "testing"

func TestParseStatus(t *testing.T) {
	valid := []string{"draft", "sent", "paid", "overdue", "cancelled"}
	for _, s := range valid {
		got, err := ParseStatus(s)
		if err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParseStatus(%q) = %q", s, got)
		}
	}
}

func TestParseStatusDefaultsEmptyToDraft(t *testing.T) {
	got, err := ParseStatus("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != StatusDraft {
		t.Fatalf("ParseStatus(\"\") = %q, want draft", got)
	}
}

func TestParseStatusRejectsUnknown(t *testing.T) {
	for _, s := range []string{"final", "DRAFT", "archived"} {
		if _, err := ParseStatus(s); err == nil {
			t.Errorf("ParseStatus(%q) expected error", s)
		}
	}
}
