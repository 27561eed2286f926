package stemmer

import "strings"

// contractionSuffixes are the enclitic/linker forms that, instead of
// true derivational suffixes, mark a contraction with the following
// word (ng/g linkers, 't/'y "at"/"ay" contractions).
var contractionSuffixes = map[string]bool{
	"ng": true, "g": true, "'t": true, "'y": true,
}

// stemSuf peels a suffix from each candidate in f, distinguishing
// true suffixes from contraction enclitics, and proposes the
// phonological variants that accompany suffix removal: d/r, o/u, e/i
// alternation, vowel-loss repair, and metathesis.
func stemSuf(f frontier, suffixes AffixList, lex *Lexicon) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		for _, suffix := range suffixes {
			addSuffixVariants(out, cand, suffix, lex)
		}
	}
	return out
}

func addSuffixVariants(out frontier, cand Candidate, suffix string, lex *Lexicon) {
	text := cand.Text
	if !strings.HasSuffix(text, suffix) || len(text) <= len(suffix) {
		return
	}

	stemText := text[:len(text)-len(suffix)]
	stem := cand.withText(stemText)

	if contractionSuffixes[suffix] {
		last := lastRune(stemText)
		switch suffix {
		case "g":
			if last == 'n' {
				return
			}
		case "'t", "'y":
			if !isVowel(last) {
				return
			}
		}
		stem.Contraction = suffix
	} else {
		stem.Suf = suffix
	}
	out.add(stem)

	runes := []rune(stemText)
	if len(runes) == 0 {
		return
	}

	if (suffix == "in" || suffix == "an") && runes[len(runes)-1] == 'r' {
		variant := replaceAt(stem, -1, 'd')
		variant.PhonemeChange = "suf: d/r"
		out.add(variant)
	}

	switch {
	case len(runes) > 1 && runes[len(runes)-1] == 'u':
		variant := replaceAt(stem, -1, 'o')
		variant.PhonemeChange = "suf: o/u"
		out.add(variant)
	case len(runes) > 2 && runes[len(runes)-2] == 'u':
		variant := replaceAt(stem, -2, 'o')
		variant.PhonemeChange = "suf: o/u"
		out.add(variant)
	}

	switch {
	case len(runes) > 1 && runes[len(runes)-1] == 'i':
		variant := replaceAt(stem, -1, 'e')
		variant.PhonemeChange = "suf: e/i"
		out.add(variant)
	case len(runes) > 2 && runes[len(runes)-2] == 'i':
		variant := replaceAt(stem, -2, 'e')
		variant.PhonemeChange = "suf: e/i"
		out.add(variant)
	}

	if len(runes) > 2 && isAcceptable(stemText) && isConsonant(runes[len(runes)-2], runes[len(runes)-1]) {
		out.union(stemVowelLoss(singleFrontier(stem), lex))

		metathesized := swapAt(stem, -1, -2)
		metathesized.Metathesis = true
		if isValid(metathesized.Text, lex) {
			out.add(metathesized)
		} else {
			out.union(stemVowelLoss(singleFrontier(metathesized), lex))
		}
	}
}

func singleFrontier(c Candidate) frontier {
	return frontier{c.Text: c}
}
