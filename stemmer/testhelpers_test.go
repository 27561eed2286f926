package stemmer

import (
	"bytes"

	"github.com/andrianllmm/tagalog-stemmer/stemmer/data"
)

// testPrefixes, testInfixes, and testSuffixes load the same embedded
// affix lists the package-level default Stemmer uses, so rule-family
// tests exercise the data this repo actually ships.
func testPrefixes() AffixList {
	list, err := LoadAffixes(bytes.NewReader(data.Prefixes))
	if err != nil {
		panic(err)
	}
	return list
}

func testInfixes() AffixList {
	list, err := LoadAffixes(bytes.NewReader(data.Infixes))
	if err != nil {
		panic(err)
	}
	return list
}

func testSuffixes() AffixList {
	list, err := LoadAffixes(bytes.NewReader(data.Suffixes))
	if err != nil {
		panic(err)
	}
	return list
}

// testLexicon returns the embedded default lexicon.
func testLexicon() *Lexicon {
	return defaultLexicon
}

func frontierHasText(f frontier, text string) bool {
	_, ok := f[text]
	return ok
}

func frontierTexts(f frontier) []string {
	out := make([]string, 0, len(f))
	for text := range f {
		out = append(out, text)
	}
	return out
}
