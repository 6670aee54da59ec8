package drill

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"144", "144"},
		{"  144 ", "144"},
		{"X > Y", "x>y"},
		{" x\t>\ny ", "x>y"},
		{"", ""},
		{"   ", ""},
		{"3 / 4", "3/4"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsCorrect_WhitespaceAndCaseInvariant(t *testing.T) {
	pairs := [][2]string{
		{"144", "144"},
		{" X > Y ", "x>y"},
		{"x>y", " X > Y "},
		{"12.5", " 12 . 5"},
	}
	for _, p := range pairs {
		if !IsCorrect(p[0], p[1]) {
			t.Errorf("IsCorrect(%q, %q) = false, want true", p[0], p[1])
		}
	}
}

func TestIsCorrect_NoSemanticEquivalence(t *testing.T) {
	if IsCorrect("y<x", "x>y") {
		t.Error(`"y<x" must not match "x>y" — literal comparison only`)
	}
	if IsCorrect("144.0", "144") {
		t.Error(`"144.0" must not match "144" — no numeric tolerance`)
	}
}

func TestIsCorrect_Deterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		if !IsCorrect("x = y or relation cannot be established", "X = Y or relation cannot be established") {
			t.Fatal("expected stable true result")
		}
	}
}
