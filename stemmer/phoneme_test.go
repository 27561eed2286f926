package stemmer

import "testing"

func TestIsVowel(t *testing.T) {
	for _, r := range []rune("aeiouAEIOU") {
		if !isVowel(r) {
			t.Errorf("isVowel(%q) = false, want true", r)
		}
	}
	for _, r := range []rune("bcdfgnlpqrstxz") {
		if isVowel(r) {
			t.Errorf("isVowel(%q) = true, want false", r)
		}
	}
}

func TestIsConsonant(t *testing.T) {
	if !isConsonant('s', 't') {
		t.Error("isConsonant('s', 't') = false, want true")
	}
	if isConsonant('s', 'a') {
		t.Error("isConsonant('s', 'a') = true, want false")
	}
}

func TestIsAcceptable(t *testing.T) {
	cases := []struct {
		word string
		want bool
	}{
		{"word", true},
		{"aa", true},
		{"aaa", false},
		{"bbbb", false},
		{"c", false},
		{"bukas", true},
		{"pst", true},  // consonant-initial, length 3: accepted unconditionally
		{"aei", false}, // vowel-initial, length 3, no consonant: rejected
		{"ba", false},  // consonant-initial, length 2: no accepting branch
	}
	for _, c := range cases {
		if got := isAcceptable(c.word); got != c.want {
			t.Errorf("isAcceptable(%q) = %v, want %v", c.word, got, c.want)
		}
	}
}
