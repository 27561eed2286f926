package stemmer

import "sort"

// sortCandidates orders candidates by score (affix + reduplication
// length) descending. Ties are broken by shorter Text, then
// lexicographically, so Stem's choice is reproducible across runs
// regardless of map iteration order.
func sortCandidates(cands []Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		a, b := cands[i], cands[j]
		if a.score() != b.score() {
			return a.score() > b.score()
		}
		if len(a.Text) != len(b.Text) {
			return len(a.Text) < len(b.Text)
		}
		return a.Text < b.Text
	})
}

// Stem selects the single best candidate for word. It runs the same
// cascade as Candidates, then prefers, in order:
//
//  1. candidates with zero phonological transformations AND no
//     contraction (the cleanest derivation)
//  2. candidates with no contraction
//  3. candidates with zero phonological transformations
//  4. any surviving candidate
//
// Within whichever class is non-empty, the highest-scoring candidate
// wins. If the cascade produces nothing (no candidate survives the
// lexicon/acceptability filters), Stem returns word unchanged.
func (s *Stemmer) Stem(word string, lex *Lexicon) Candidate {
	cands := s.Candidates(word, lex)
	if len(cands) == 0 {
		return newCandidate(word)
	}
	if len(cands) == 1 && cands[0].Text == word {
		return cands[0]
	}

	classes := [][]Candidate{
		filterCandidates(cands, func(c Candidate) bool {
			return c.countTransformations() == 0 && c.Contraction == ""
		}),
		filterCandidates(cands, func(c Candidate) bool { return c.Contraction == "" }),
		filterCandidates(cands, func(c Candidate) bool { return c.countTransformations() == 0 }),
		cands,
	}

	for _, class := range classes {
		if len(class) > 0 {
			return class[0]
		}
	}
	return cands[0]
}

func filterCandidates(cands []Candidate, keep func(Candidate) bool) []Candidate {
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
