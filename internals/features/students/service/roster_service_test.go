package service_test

import (
	"testing"

	"omshanti_backend/internals/features/students/service"
)

func TestGenerateNameSuggestions(t *testing.T) {
	got := service.GenerateNameSuggestions("Priya", []string{"Priya"})
	want := []string{"Priya 2", "Priya 3", "Priya 4"}
	if len(got) != len(want) {
		t.Fatalf("expected %d suggestions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suggestion %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestGenerateNameSuggestionsSkipsTaken(t *testing.T) {
	existing := []string{"Priya", "Priya 2", "Priya 4"}
	got := service.GenerateNameSuggestions("Priya", existing)
	want := []string{"Priya 3", "Priya 5", "Priya 6"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suggestion %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestGenerateNameSuggestionsCount(t *testing.T) {
	got := service.GenerateNameSuggestions("Anand", nil)
	if len(got) != 3 {
		t.Fatalf("expected exactly 3 suggestions, got %d", len(got))
	}
}
