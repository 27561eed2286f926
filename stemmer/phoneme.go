package stemmer

// Phoneme classification for the 20-letter Filipino alphabet plus the
// loanword consonants (c, f, j, ñ, q, v, x, z) that appear in borrowed
// stems such as "sigarilyo" and "check". Digraphs (ch, ng, sh) need no
// special casing because classification is rune-by-rune, matching how
// is_vowel/is_consonant are applied in the rule families: always to a
// single rune or to a short run of runes checked one at a time.

var vowelSet = map[rune]bool{
	'a': true, 'e': true, 'i': true, 'o': true, 'u': true,
}

var consonantSet = map[rune]bool{
	'b': true, 'c': true, 'd': true, 'f': true, 'g': true, 'h': true,
	'j': true, 'k': true, 'l': true, 'm': true, 'n': true, 'ñ': true,
	'p': true, 'q': true, 'r': true, 's': true, 't': true, 'v': true,
	'w': true, 'x': true, 'y': true, 'z': true,
}

// isVowel reports whether every rune in runes is a Tagalog vowel. An empty
// argument list is vacuously true, matching the variadic helper's use
// at call sites that always pass at least one rune.
func isVowel(runes ...rune) bool {
	for _, r := range runes {
		if !vowelSet[toLowerRune(r)] {
			return false
		}
	}
	return true
}

// isConsonant reports whether every rune in runes is a Tagalog consonant.
func isConsonant(runes ...rune) bool {
	for _, r := range runes {
		if !consonantSet[toLowerRune(r)] {
			return false
		}
	}
	return true
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// isAcceptable reports whether a candidate string is phonotactically
// plausible as a Tagalog stem, independent of lexicon membership. The
// test branches on the first rune:
//
//   - vowel-initial: accept iff length == 2, or length >= 3 and the
//     string contains at least one consonant.
//   - consonant-initial: accept iff length == 3 unconditionally, or
//     length >= 4 and the string contains at least one vowel.
//
// Anything else (length 1, or a 2-rune consonant-initial token) is
// rejected.
func isAcceptable(s string) bool {
	runes := []rune(s)
	n := len(runes)
	if n < 2 {
		return false
	}

	switch {
	case isVowel(runes[0]):
		return n == 2 || (n >= 3 && containsConsonant(runes))
	case isConsonant(runes[0]):
		return n == 3 || (n >= 4 && containsVowel(runes))
	default:
		return false
	}
}

func containsVowel(runes []rune) bool {
	for _, r := range runes {
		if isVowel(r) {
			return true
		}
	}
	return false
}

func containsConsonant(runes []rune) bool {
	for _, r := range runes {
		if isConsonant(r) {
			return true
		}
	}
	return false
}
