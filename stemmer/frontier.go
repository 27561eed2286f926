package stemmer

// frontier is the working set the cascade threads through each rule
// stage, deduplicated by surface text. When two candidates share the
// same Text, the one with the higher score (more affix/reduplication
// material annotated) wins, so a later stage never silently discards
// a richer derivation of a form it already produced.
type frontier map[string]Candidate

// newFrontier seeds a frontier with a single bare token, the cascade's
// starting point.
func newFrontier(word string) frontier {
	return frontier{word: newCandidate(word)}
}

// add inserts c into f, keeping the higher-scoring candidate on a
// Text collision. Ties keep whichever was already present.
func (f frontier) add(c Candidate) {
	existing, ok := f[c.Text]
	if !ok || c.score() > existing.score() {
		f[c.Text] = c
	}
}

// union merges every candidate of src into f.
func (f frontier) union(src frontier) {
	for _, c := range src {
		f.add(c)
	}
}

// slice returns the frontier's candidates as a slice, in no
// guaranteed order (callers that need determinism sort afterward).
func (f frontier) slice() []Candidate {
	out := make([]Candidate, 0, len(f))
	for _, c := range f {
		out = append(out, c)
	}
	return out
}
