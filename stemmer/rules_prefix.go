package stemmer

import "strings"

// stemPre peels a prefix from each candidate in f and proposes the
// phonological variants that can accompany prefix removal: the d/r
// alternation on a following liquid, and nasal-assimilation variants
// (k/null, b/p, d/s/t) when the stripped stem is acceptable and
// vowel-initial.
func stemPre(f frontier, prefixes AffixList) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		for _, prefix := range prefixes {
			addPrefixVariants(out, cand, prefix)
		}
	}
	return out
}

func addPrefixVariants(out frontier, cand Candidate, prefix string) {
	text := cand.Text
	if !strings.HasPrefix(text, prefix) || len(text) <= len(prefix) {
		return
	}

	stemText := text[len(prefix):]
	stem := cand.withText(stemText)
	stem.Pre = prefix

	if strings.HasPrefix(stem.Text, "-") {
		stem = stem.withText(stem.Text[1:])
	}
	out.add(stem)

	runes := []rune(stem.Text)
	if len(runes) == 0 {
		return
	}

	// d/r alternation: a prefix-initial liquid lost to the stem boundary.
	if runes[0] == 'r' && len(runes) > 1 && isVowel(lastRune(prefix), runes[1]) {
		variant := stem.withText("d" + string(runes[1:]))
		variant.PhonemeChange = "pre: d/r"
		out.add(variant)
	}

	if !isAcceptable(stem.Text) || !isVowel(runes[0]) {
		return
	}

	switch {
	case strings.HasSuffix(prefix, "ng"):
		assimKNull(out, stem, runes)
	case strings.HasSuffix(prefix, "m"):
		assimLabial(out, stem, runes)
	case strings.HasSuffix(prefix, "n"):
		assimCoronal(out, stem, runes)
	}
}

// assimKNull models historical "paN-" + k-initial root assimilation:
// the velar nasal surfaces as k, or disappears entirely when the root
// itself begins with a reduplicated "ng" syllable.
func assimKNull(out frontier, stem Candidate, runes []rune) {
	variant := stem.withText("k" + stem.Text)
	variant.Assimilation = "k/null"
	out.add(variant)

	if len(runes) > 3 && string(runes[1:3]) == "ng" && runes[0] == runes[3] && isVowel(runes[0]) {
		inner := stem.withText(string(runes[3:]))
		inner.Rep = string(runes[:3])
		out.add(inner)

		if isAcceptable(inner.Text) {
			withK := inner.withText("k" + inner.Text)
			withK.Assimilation = "k/null"
			out.add(withK)
		}
	}
}

// assimLabial models "paN-" assimilation to b or p before a root that
// has lost its own initial nasal.
func assimLabial(out frontier, stem Candidate, runes []rune) {
	for _, l := range "bp" {
		variant := stem.withText(string(l) + stem.Text)
		variant.Assimilation = "b/p: " + string(l)
		out.add(variant)
	}

	if len(runes) > 2 && runes[1] == 'm' && runes[0] == runes[2] && isVowel(runes[0]) {
		inner := string(runes[2:])
		for _, l := range "bp" {
			variant := stem.withText(string(l) + inner)
			variant.Assimilation = "b/p: " + string(l)
			out.add(variant)
		}
	}
}

// assimCoronal models "paN-" assimilation to d, s, or t.
func assimCoronal(out frontier, stem Candidate, runes []rune) {
	for _, l := range "dst" {
		variant := stem.withText(string(l) + stem.Text)
		variant.Assimilation = "d/s/t: " + string(l)
		out.add(variant)
	}

	if len(runes) > 2 && runes[1] == 'n' && runes[0] == runes[2] && isVowel(runes[0]) {
		inner := string(runes[2:])
		for _, l := range "dst" {
			variant := stem.withText(string(l) + inner)
			variant.Assimilation = "d/s/t: " + string(l)
			out.add(variant)
		}
	}
}

func lastRune(s string) rune {
	runes := []rune(s)
	return runes[len(runes)-1]
}
