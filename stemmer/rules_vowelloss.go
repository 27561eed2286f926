package stemmer

// vowelLossLetters enumerates the insertion candidates for stemVowelLoss, in a
// fixed order so results are deterministic when more than one
// insertion point yields a lexicon hit with an equal score.
var vowelLossLetters = []rune{'a', 'e', 'i', 'o', 'u'}

// stemVowelLoss restores a vowel a suffixation syncope may have
// dropped: either appended after the final consonant, or reinserted
// before it. Unlike every other rule family, this one only emits a
// candidate that is already a lexicon hit — it is a repair step, not
// a speculative generator, so it must not flood the frontier with
// implausible forms.
func stemVowelLoss(f frontier, lex *Lexicon) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		addVowelLossVariants(out, cand, lex)
	}
	return out
}

func addVowelLossVariants(out frontier, cand Candidate, lex *Lexicon) {
	runes := []rune(cand.Text)
	for _, v := range vowelLossLetters {
		if len(runes) > 1 {
			candidateText := string(runes) + string(v)
			if isValid(candidateText, lex) {
				variant := cand.withText(candidateText)
				variant.VowelLoss = string(v)
				out.add(variant)
			}
		}
		if len(runes) > 2 {
			candidateText := string(runes[:len(runes)-1]) + string(v) + string(runes[len(runes)-1])
			if isValid(candidateText, lex) {
				variant := cand.withText(candidateText)
				variant.VowelLoss = string(v)
				out.add(variant)
			}
		}
	}
}
