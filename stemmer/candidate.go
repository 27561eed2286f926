package stemmer

// Candidate is a proposed stem together with the trail of rule
// applications that produced it from the original surface word. The
// zero value is itself a valid candidate: an unmodified token with no
// annotations, which is how the rule cascade seeds its frontier.
//
// Every rule that derives a new Candidate copies the parent's fields
// and then overwrites only the annotation(s) it owns, mirroring how
// the reference implementation propagates instance state through
// every string-editing method of its Stem subclass.
type Candidate struct {
	Text string `json:"text"`

	Pre string `json:"pre,omitempty"`
	Inf string `json:"inf,omitempty"`
	Suf string `json:"suf,omitempty"`
	Rep string `json:"rep,omitempty"`
	Dup string `json:"dup,omitempty"`

	Contraction   string `json:"contraction,omitempty"`
	PhonemeChange string `json:"phoneme_change,omitempty"`
	Assimilation  string `json:"assimilation,omitempty"`
	VowelLoss     string `json:"vowel_loss,omitempty"`
	Metathesis    bool   `json:"metathesis,omitempty"`
}

// newCandidate seeds a frontier with a bare token carrying no
// annotations, the starting point for every stem derivation.
func newCandidate(text string) Candidate {
	return Candidate{Text: text}
}

// withText returns a copy of c with Text replaced, preserving every
// annotation already accumulated. Rules that derive a sibling
// candidate (a phonological variant of one they already emitted) use
// this instead of re-deriving from the original parent so the shared
// annotations stay attached.
func (c Candidate) withText(text string) Candidate {
	c.Text = text
	return c
}

// countAffixes sums the lengths of the affix annotations, in runes.
func (c Candidate) countAffixes() int {
	return len([]rune(c.Pre)) + len([]rune(c.Inf)) + len([]rune(c.Suf))
}

// countReduplication sums the lengths of the reduplication
// annotations, in runes.
func (c Candidate) countReduplication() int {
	return len([]rune(c.Rep)) + len([]rune(c.Dup))
}

// countTransformations counts how many phonological transformations
// were applied: phoneme change, nasal assimilation, vowel loss, and
// metathesis each count at most once regardless of magnitude.
func (c Candidate) countTransformations() int {
	n := 0
	if c.PhonemeChange != "" {
		n++
	}
	if c.Assimilation != "" {
		n++
	}
	if c.VowelLoss != "" {
		n++
	}
	if c.Metathesis {
		n++
	}
	return n
}

// score is the Selector's ranking key: total affix and reduplication
// length. Larger is preferred, since it reflects more material peeled
// away from the surface form.
func (c Candidate) score() int {
	return c.countAffixes() + c.countReduplication()
}
