package stemmer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexicon is the set of known stems used to validate candidates. A
// nil *Lexicon (or one built from zero words) makes every token
// valid, matching the contract that an absent lexicon disables this
// filter rather than rejecting everything.
type Lexicon struct {
	words map[string]struct{}
}

// NewLexicon builds a Lexicon from a list of words. Words are
// lowercased and deduplicated; an empty list produces a Lexicon whose
// Contains method is vacuously true.
func NewLexicon(words ...string) *Lexicon {
	lex := &Lexicon{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		lex.words[w] = struct{}{}
	}
	return lex
}

// LoadLexicon reads one word per line (blank lines and lines starting
// with "#" are skipped) and builds a Lexicon from it.
func LoadLexicon(r io.Reader) (*Lexicon, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("stemmer: load lexicon: %w", err)
	}
	return NewLexicon(words...), nil
}

// Contains reports whether word is a known stem. A nil Lexicon, or
// one with zero entries, treats every word as known.
func (lex *Lexicon) Contains(word string) bool {
	if lex == nil || len(lex.words) == 0 {
		return true
	}
	_, ok := lex.words[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct words in the lexicon.
func (lex *Lexicon) Len() int {
	if lex == nil {
		return 0
	}
	return len(lex.words)
}

// With returns a new Lexicon containing every word of lex plus extra.
// It never mutates lex. Useful for tests that need the default
// lexicon extended with a handful of expected stems.
func (lex *Lexicon) With(extra ...string) *Lexicon {
	out := &Lexicon{words: make(map[string]struct{})}
	if lex != nil {
		for w := range lex.words {
			out.words[w] = struct{}{}
		}
	}
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		out.words[w] = struct{}{}
	}
	return out
}

// isValid reports whether token is an acceptable stem per lex: true
// if lex is nil/empty (no lexicon filter configured), otherwise
// lexicon membership.
func isValid(token string, lex *Lexicon) bool {
	return lex.Contains(token)
}
