package similarity

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	if got := Levenshtein("los angeles", "los angeles"); got != 1 {
		t.Errorf("identical strings scored %v", got)
	}
	if got := Levenshtein("Los Angeles", "los angeles"); got != 1 {
		t.Errorf("case should be ignored, scored %v", got)
	}
	close := Levenshtein("los angelos", "los angeles")
	far := Levenshtein("tokyo", "los angeles")
	if close <= far {
		t.Errorf("expected closer string to score higher: close=%v far=%v", close, far)
	}
}

func TestByNameRange(t *testing.T) {
	pairs := [][2]string{
		{"paris", "paris"},
		{"paris", "perth"},
		{"north dakota center", "center north dakota"},
		{"xyz", "kolkata"},
	}
	for _, name := range Names() {
		f, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		for _, p := range pairs {
			s := f(p[0], p[1])
			if s < 0 || s > 1 {
				t.Errorf("%s(%q, %q) = %v out of range", name, p[0], p[1], s)
			}
		}
		if s := f("chicago", "chicago"); s != 1 {
			t.Errorf("%s identical strings scored %v", name, s)
		}
	}
}

func TestByNameUnknown(t *testing.T) {
	if _, err := ByName("soundex"); err == nil {
		t.Error("expected error for unknown metric")
	}
}
