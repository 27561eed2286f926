package stemmer

import "testing"

func TestPackageLevelStem(t *testing.T) {
	// "bukas" is already in the embedded default lexicon, so the
	// vowel-loss repair in stemSuf should find it without any test
	// lexicon extension.
	got := Stem("buksan")
	if got.Text != "bukas" {
		t.Errorf("Stem(%q) = %q, want %q", "buksan", got.Text, "bukas")
	}
}

func TestPackageLevelCandidatesIncludesStem(t *testing.T) {
	cands := Candidates("tauhan")
	found := false
	for _, c := range cands {
		if c.Text == "tao" {
			found = true
		}
	}
	if !found {
		t.Errorf("Candidates(%q) missing %q, got %v", "tauhan", "tao", cands)
	}
}

type stubTokenizer struct{}

func (stubTokenizer) Words(text string) []string {
	return []string{"buksan", "ang", "tauhan"}
}

func TestStemText(t *testing.T) {
	got := StemText("Buksan ang tauhan.", stubTokenizer{}, DefaultTextConfig())
	if len(got) != 3 {
		t.Fatalf("StemText returned %d candidates, want 3", len(got))
	}
	if got[0].Text != "bukas" {
		t.Errorf("got[0].Text = %q, want %q", got[0].Text, "bukas")
	}
	if got[2].Text != "tao" {
		t.Errorf("got[2].Text = %q, want %q", got[2].Text, "tao")
	}
}

func TestDefaultLexiconIsNonEmpty(t *testing.T) {
	if DefaultLexicon().Len() == 0 {
		t.Error("default embedded lexicon should not be empty")
	}
}
