package stemmer

// stemRep undoes partial reduplication: a short copy of the root's
// leading syllable (or leading consonant cluster) prefixed onto the
// root itself ("bibili" = "bi" + "bili", "sisplit" = "si" + "split",
// "splisplit" = "spli" + "split"). Ten named shapes are tried, one per
// onset cluster size (0, 1, 2, or 3 leading consonants) and copy
// width, each with its own consonant/vowel discipline on the compared
// positions. Every shape that matches contributes its own candidate
// to the frontier; the Selector ranks them by score, so this rule
// does not pick a single winner itself.
func stemRep(f frontier) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		addLiteralRepVariants(out, cand)
	}
	return out
}

func addLiteralRepVariants(out frontier, cand Candidate) {
	runes := []rune(cand.Text)
	n := len(runes)

	add := func(stemFrom int, repTo int) {
		variant := cand.withText(string(runes[stemFrom:]))
		variant.Rep = string(runes[:repTo])
		out.add(variant)
	}
	eq := func(aStart, aEnd, bStart, bEnd int) bool {
		if aEnd > n || bEnd > n {
			return false
		}
		return string(runes[aStart:aEnd]) == string(runes[bStart:bEnd])
	}
	vowelAt := func(i int) bool { return i < n && isVowel(runes[i]) }
	consonantAt := func(i int) bool { return i < n && isConsonant(runes[i]) }
	consonantRange := func(start, end int) bool { return end <= n && isConsonant(runes[start:end]...) }

	// V-V prefix (e.g. "aalis" => "alis"): the token starts with the
	// same vowel repeated.
	if n > 2 && runes[0] == runes[1] && vowelAt(0) && vowelAt(1) {
		add(1, 1)
	}

	// CV-CV (e.g. "bibili" => "bili"): the leading consonant-vowel
	// pair is copied whole.
	if n > 4 && eq(0, 2, 2, 4) && consonantAt(0) {
		add(2, 2)
	}

	if n > 5 {
		// CV-CCV (e.g. "cecheck" => "check"): only the first
		// consonant and the eventual vowel repeat; the cluster's
		// second consonant does not.
		if runes[0] == runes[2] && runes[1] == runes[4] && consonantAt(0) && vowelAt(1) {
			add(2, 2)
		}
		// CC-CCV (e.g. "chcheck" => "check"): both onset consonants
		// repeat verbatim.
		if eq(0, 2, 2, 4) && consonantRange(0, 2) && vowelAt(4) {
			add(2, 2)
		}
		// CCV-CCV (e.g. "checheck" => "check"): the consonant cluster
		// and its vowel both repeat.
		if eq(0, 2, 3, 5) && consonantRange(0, 2) && vowelAt(2) {
			add(3, 3)
		}
	}

	if n > 6 {
		// CV-CCCV (e.g. "sisplit" => "split").
		if runes[0] == runes[2] && runes[1] == runes[5] && consonantAt(0) && vowelAt(1) {
			add(2, 2)
		}
		// CC-CCCV (e.g. "spsplit" => "split").
		if eq(0, 2, 2, 4) && consonantRange(0, 2) && vowelAt(5) {
			add(2, 2)
		}
		// CCV-CCCV (e.g. "spisplit" => "split").
		if eq(0, 2, 3, 5) && runes[2] == runes[6] && consonantRange(0, 2) && vowelAt(6) {
			add(3, 3)
		}
		// CCC-CCCV (e.g. "splsplit" => "split").
		if eq(0, 3, 3, 6) && consonantRange(0, 3) && vowelAt(6) {
			add(3, 3)
		}
		// CCCV-CCCV (e.g. "splisplit" => "split").
		if eq(0, 4, 4, 8) && consonantRange(0, 3) && vowelAt(3) {
			add(4, 4)
		}
	}
}
