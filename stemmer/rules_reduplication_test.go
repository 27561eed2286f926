package stemmer

import "testing"

func TestStemRep(t *testing.T) {
	cases := map[string]string{
		"aalis":     "alis",
		"bibili":    "bili",
		"cecheck":   "check",
		"chcheck":   "check",
		"checheck":  "check",
		"sisplit":   "split",
		"spsplit":   "split",
		"spisplit":  "split",
		"splsplit":  "split",
		"splisplit": "split",
	}

	for inflection, expected := range cases {
		t.Run(inflection, func(t *testing.T) {
			f := stemRep(newFrontier(inflection))
			if !frontierHasText(f, expected) {
				t.Errorf("stemRep(%q) missing expected candidate %q; got %v", inflection, expected, frontierTexts(f))
			}
		})
	}
}

func TestStemRepCVCVRequiresConsonantOnset(t *testing.T) {
	// "ae" repeats literally, but CV-CV requires a consonant onset;
	// a vowel-initial repeated pair must not be treated as CV-CV.
	f := stemRep(newFrontier("aeaexyz"))
	if frontierHasText(f, "aexyz") {
		t.Errorf("stemRep(%q) should not match CV-CV on a vowel onset, got %v", "aeaexyz", frontierTexts(f))
	}
}
