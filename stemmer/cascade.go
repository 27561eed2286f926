package stemmer

// Stemmer holds the affix lists a cascade run draws on. It is built
// once (NewStemmer, or the package-level default loaded from
// stemmer/data) and is safe for concurrent use: Candidates and Stem
// allocate their own local frontier per call and never touch shared
// mutable state.
type Stemmer struct {
	prefixes AffixList
	infixes  AffixList
	suffixes AffixList
}

// NewStemmer builds a Stemmer from explicit affix lists. Each list is
// used as given; callers loading from LoadAffixes already get them
// sorted ascending by length.
func NewStemmer(prefixes, infixes, suffixes AffixList) *Stemmer {
	return &Stemmer{prefixes: prefixes, infixes: infixes, suffixes: suffixes}
}

// Candidates runs the full rule cascade over word and returns every
// candidate that survives the acceptability and lexicon filters,
// sorted by score descending (see sortCandidates). If none survives,
// it returns the unannotated input word as the only candidate. lex may
// be nil to disable lexicon filtering.
//
// The cascade order is fixed and deliberate: stemDup runs first and
// last, and stemRep runs after the prefix stage and again after the
// infix stage, since a reduplicated or contracted form can itself carry an affix
// ("paninigarilyo" needs a prefix peeled before its nasal-assimilated
// root "sigarilyo" is reachable; "splisplit" needs its reduplication
// undone before "split" is recognized directly).
func (s *Stemmer) Candidates(word string, lex *Lexicon) []Candidate {
	stages := []func(frontier) frontier{
		stemDup,
		func(f frontier) frontier { return stemPre(f, s.prefixes) },
		stemRep,
		func(f frontier) frontier { return stemInf(f, s.infixes) },
		stemRep,
		func(f frontier) frontier { return stemSuf(f, s.suffixes, lex) },
		stemDup,
	}

	// Each stage sees every candidate accumulated so far, not just the
	// previous stage's output: a reduplicated form may still need a
	// prefix peeled, and a prefix-stripped form may still need its
	// reduplication undone, so later stages must be able to reach back
	// to any earlier derivation, including the original word.
	all := newFrontier(word)
	for _, stage := range stages {
		all.union(stage(all))
	}

	out := make([]Candidate, 0, len(all))
	for _, cand := range all {
		if cand.Text == word {
			continue
		}
		if !isValid(cand.Text, lex) || !isAcceptable(cand.Text) {
			continue
		}
		out = append(out, cand)
	}

	if len(out) == 0 {
		return []Candidate{newCandidate(word)}
	}

	sortCandidates(out)
	return out
}
