package stemmer

// String manipulation confined to this file: every rule family edits
// a Candidate's Text through replaceAt or swapAt rather than touching
// strings directly, so annotation propagation only needs to be
// correct in one place.

// replaceAt returns a copy of c with the rune at index idx (negative
// indices count from the end, Python-slice style: -1 is the last
// rune) replaced by r. The annotation fields are carried over
// unchanged; the caller overwrites whichever one the rule owns.
func replaceAt(c Candidate, idx int, r rune) Candidate {
	runes := []rune(c.Text)
	i := normalizeIndex(idx, len(runes))
	runes[i] = r
	return c.withText(string(runes))
}

// swapAt returns a copy of c with the runes at indices i and j
// exchanged. Used by the metathesis sub-rule to swap the last two
// runes of a stem.
func swapAt(c Candidate, i, j int) Candidate {
	runes := []rune(c.Text)
	ni := normalizeIndex(i, len(runes))
	nj := normalizeIndex(j, len(runes))
	runes[ni], runes[nj] = runes[nj], runes[ni]
	return c.withText(string(runes))
}

// normalizeIndex converts a possibly-negative, Python-style index
// into a 0-based index into a slice of the given length.
func normalizeIndex(idx, length int) int {
	if idx < 0 {
		return length + idx
	}
	return idx
}
