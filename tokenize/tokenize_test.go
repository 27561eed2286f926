package tokenize

import "testing"

func TestWordTokensReconstructsOriginal(t *testing.T) {
	s := "Buksan ang tauhan, hapung-hapon siya, iba't ibang gawa."
	tokens := WordTokens(s)

	var rebuilt string
	for _, tok := range tokens {
		if s[tok.Start:tok.End] != tok.Text {
			t.Errorf("offset mismatch for %v: s[%d:%d] = %q", tok, tok.Start, tok.End, s[tok.Start:tok.End])
		}
		rebuilt += tok.Text
	}
	if rebuilt != s {
		t.Errorf("concatenated tokens = %q, want %q", rebuilt, s)
	}
}

func TestWordTokensClassification(t *testing.T) {
	tokens := WordTokens("ibig, 123!")
	want := []struct {
		text string
		typ  TokenType
	}{
		{"ibig", Word},
		{",", Punctuation},
		{" ", Space},
		{"123", Word},
		{"!", Punctuation},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Text != w.text || tokens[i].Type != w.typ {
			t.Errorf("token[%d] = %v, want Text=%q Type=%v", i, tokens[i], w.text, w.typ)
		}
	}
}

func TestWordTokensKeepsHyphenatedReduplicationWhole(t *testing.T) {
	tokens := WordTokens("hapung-hapon")
	if len(tokens) != 1 || tokens[0].Text != "hapung-hapon" || tokens[0].Type != Word {
		t.Errorf("expected a single Word token, got %v", tokens)
	}
}

func TestWordTokensKeepsContractionApostropheWhole(t *testing.T) {
	tokens := WordTokens("iba't")
	if len(tokens) != 1 || tokens[0].Text != "iba't" || tokens[0].Type != Word {
		t.Errorf("expected a single Word token, got %v", tokens)
	}
}

func TestWordTokensSplitsLeadingAndTrailingPunctuation(t *testing.T) {
	tokens := WordTokens("'ibig'")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %v", tokens)
	}
	if tokens[0].Type != Punctuation || tokens[2].Type != Punctuation {
		t.Errorf("leading/trailing apostrophe should not attach to the word, got %v", tokens)
	}
	if tokens[1].Text != "ibig" {
		t.Errorf("middle token = %q, want %q", tokens[1].Text, "ibig")
	}
}

func TestWordTokensEmptyString(t *testing.T) {
	if got := WordTokens(""); got != nil {
		t.Errorf("WordTokens(\"\") = %v, want nil", got)
	}
}

func TestWords(t *testing.T) {
	got := Words("Buksan ang tauhan.")
	want := []string{"Buksan", "ang", "tauhan"}
	if len(got) != len(want) {
		t.Fatalf("Words = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordsEmptyString(t *testing.T) {
	if got := Words(""); got != nil {
		t.Errorf("Words(\"\") = %v, want nil", got)
	}
}

func TestTokenTypeString(t *testing.T) {
	if Word.String() != "Word" {
		t.Errorf("Word.String() = %q, want %q", Word.String(), "Word")
	}
}
