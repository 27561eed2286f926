package stemmer

// stemInf peels an infix from each candidate in f. The infix may sit
// immediately at the front of the root (root is vowel-initial), or
// after 1, 2, or 3 leading consonants (root begins with a consonant
// cluster): "sinulat" strips "in" after "s", "chineck" after "ch",
// "splinit" after "spl".
func stemInf(f frontier, infixes AffixList) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		for _, infix := range infixes {
			addInfixVariant(out, cand, infix)
		}
	}
	return out
}

func addInfixVariant(out frontier, cand Candidate, infix string) {
	runes := []rune(cand.Text)
	infixRunes := []rune(infix)
	if len(runes) <= len(infixRunes)+1 {
		return
	}

	for shift := 0; shift <= 3 && shift+len(infixRunes) <= len(runes); shift++ {
		if shift > 0 && !isConsonant(runes[:shift]...) {
			break // a vowel breaks the leading consonant cluster; longer shifts can't apply either
		}
		if string(runes[shift:shift+len(infixRunes)]) != infix {
			continue
		}
		next := shift + len(infixRunes)
		if next >= len(runes) || !isVowel(runes[next]) {
			continue // the rune after the infix must be a vowel
		}

		head := string(runes[:shift])
		tail := string(runes[shift+len(infixRunes):])
		stem := cand.withText(head + tail)
		stem.Inf = infix
		out.add(stem)
	}
}
