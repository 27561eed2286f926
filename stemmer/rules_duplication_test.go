package stemmer

import "testing"

func TestStemDup(t *testing.T) {
	cases := map[string]string{
		"ano-ano":        "ano",
		"panga-pangako":  "pangako",
		"anu-ano":        "ano",
		"iba't-iba":      "iba",
		"larung-laro":    "laro",
		"ating-atin":     "atin",
		"hapung-hapon":   "hapon",
		"ibat-iba":       "iba",
		"libut-libo":     "libo",
	}

	for inflection, expected := range cases {
		t.Run(inflection, func(t *testing.T) {
			f := stemDup(newFrontier(inflection))
			if !frontierHasText(f, expected) {
				t.Errorf("stemDup(%q) missing expected candidate %q; got %v", inflection, expected, frontierTexts(f))
			}
		})
	}
}

func TestSplitDupRejectsMultipleHyphens(t *testing.T) {
	if _, _, ok := splitDup("a-b-c"); ok {
		t.Error("splitDup should reject a string with more than one hyphen")
	}
}

func TestSplitDupRejectsEdgeHyphen(t *testing.T) {
	if _, _, ok := splitDup("-abc"); ok {
		t.Error("splitDup should reject a leading hyphen")
	}
	if _, _, ok := splitDup("abc-"); ok {
		t.Error("splitDup should reject a trailing hyphen")
	}
}

func TestSplitDupRejectsSingleRuneHalf(t *testing.T) {
	if _, _, ok := splitDup("a-bili"); ok {
		t.Error("splitDup should reject a single-rune half")
	}
}

func TestStemDupStutterRequiresLongHalves(t *testing.T) {
	// "ab" (len 2) is not > 2, so the stutter-prefix rule must not
	// fire even though "abcde" starts with "ab".
	f := stemDup(newFrontier("ab-abcde"))
	if frontierHasText(f, "abcde") {
		t.Errorf("stemDup(%q) should not match the stutter-prefix rule on a short first half, got %v", "ab-abcde", frontierTexts(f))
	}
}

func TestStemDupDoesNotContractApostropheY(t *testing.T) {
	// "'y" is a stem_suf-only contraction; stem_dup must never emit a
	// contraction candidate for it.
	f := stemDup(newFrontier("kumusta'y-kumusta"))
	for _, c := range f {
		if c.Contraction == "'y" {
			t.Errorf("stemDup(%q) should not produce a %q contraction, got %v", "kumusta'y-kumusta", "'y", c)
		}
	}
}
