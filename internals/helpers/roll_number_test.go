package helper

import "testing"

func TestNormalizeRollNumberEquivalence(t *testing.T) {
	for _, raw := range []string{"2", "02", "002", " 2", "0 0 2"} {
		got, err := NormalizeRollNumber(raw)
		if err != nil {
			t.Fatalf("NormalizeRollNumber(%q): unexpected error %v", raw, err)
		}
		if got != "002" {
			t.Fatalf("NormalizeRollNumber(%q) = %q, want %q", raw, got, "002")
		}
	}
}

func TestNormalizeRollNumberIdempotent(t *testing.T) {
	for _, raw := range []string{"0", "7", "042", "999", "12"} {
		once, err := NormalizeRollNumber(raw)
		if err != nil {
			t.Fatalf("first normalize of %q: %v", raw, err)
		}
		twice, err := NormalizeRollNumber(once)
		if err != nil {
			t.Fatalf("second normalize of %q: %v", once, err)
		}
		if once != twice {
			t.Fatalf("normalize not idempotent: %q -> %q -> %q", raw, once, twice)
		}
	}
}

func TestNormalizeRollNumberWidth(t *testing.T) {
	cases := map[string]string{
		"0":   "000",
		"5":   "005",
		"42":  "042",
		"100": "100",
		"999": "999",
	}
	for raw, want := range cases {
		got, err := NormalizeRollNumber(raw)
		if err != nil {
			t.Fatalf("NormalizeRollNumber(%q): %v", raw, err)
		}
		if got != want {
			t.Fatalf("NormalizeRollNumber(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeRollNumberRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "  ", "abc", "12a", "1000", "99999", "-1", "1,2"} {
		if _, err := NormalizeRollNumber(raw); err == nil {
			t.Fatalf("NormalizeRollNumber(%q): expected error, got none", raw)
		}
	}
}

func TestIsCanonicalRollNumber(t *testing.T) {
	if !IsCanonicalRollNumber("002") {
		t.Fatal("002 should be canonical")
	}
	if IsCanonicalRollNumber("2") {
		t.Fatal("2 should not be canonical")
	}
	if IsCanonicalRollNumber("xyz") {
		t.Fatal("xyz should not be canonical")
	}
}
