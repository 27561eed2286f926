// Package stemmer proposes and ranks candidate stems for inflected
// Tagalog words by peeling affixes, undoing reduplication, reversing
// common phonological alternations, and breaking enclitic
// contractions, then checking each candidate against a lexicon.
//
// The package provides two API layers:
//
//   - Structured: Candidates returns every surviving Candidate with
//     its full annotation trail (which affix, which reduplication
//     pattern, which alternation produced it).
//
//   - Convenience: Stem returns just the single best Candidate, and
//     StemText is a batch wrapper that tokenizes free text first.
//
// The algorithm is a fixed rule cascade, not a statistical or
// machine-learned model: it never ranks by edit distance and never
// returns an n-best list beyond the one Stem chooses. A nil or
// zero-word Lexicon disables lexicon filtering entirely, so Stem and
// Candidates always return *something* — a lower-confidence result
// rather than an error.
//
// Known limitations:
//
//   - Phonological alternations cover the common d/r, o/u, e/i
//     alternations and nasal assimilation; rarer or lexically
//     idiosyncratic alternations are not modeled.
//   - Compound segmentation and free-text tokenization quality are
//     the tokenizer's responsibility, not this package's.
//   - Input is expected lowercase Latin script; no NFC normalization
//     or casing is performed here.
package stemmer

import (
	"bytes"
	"fmt"

	"github.com/andrianllmm/tagalog-stemmer/stemmer/data"
)

// Tokenizer splits free text into word tokens. Any type with a
// matching Words method satisfies it. tokenize.Words has the same
// signature but is a plain function, so it does not satisfy this
// interface by itself.
type Tokenizer interface {
	Words(text string) []string
}

// TextConfig configures StemText.
type TextConfig struct {
	// ExcludePunctuation drops every non-empty token that contains no
	// Tagalog letter (punctuation, but also digit-only or symbol-only
	// tokens) before stemming. Defaults to true via DefaultTextConfig.
	ExcludePunctuation bool
}

// DefaultTextConfig returns the recommended TextConfig: punctuation
// tokens excluded.
func DefaultTextConfig() TextConfig {
	return TextConfig{ExcludePunctuation: true}
}

// StemText tokenizes text with tok, stems every resulting word token
// against lex, and returns one Candidate per stemmed token in input
// order. Tokens dropped by cfg.ExcludePunctuation get no Candidate.
func (s *Stemmer) StemText(text string, lex *Lexicon, tok Tokenizer, cfg TextConfig) []Candidate {
	words := tok.Words(text)
	out := make([]Candidate, 0, len(words))
	for _, w := range words {
		if cfg.ExcludePunctuation && isPunctuationToken(w) {
			continue
		}
		out = append(out, s.Stem(w, lex))
	}
	return out
}

func isPunctuationToken(tok string) bool {
	for _, r := range tok {
		if isVowel(r) || isConsonant(r) {
			return false
		}
	}
	return tok != ""
}

// defaultStemmer and defaultLexicon back the package-level
// convenience functions below. They are loaded once at init time from
// the embedded data in stemmer/data; a failure here means the module
// was built with corrupt embedded data, which panics rather than
// silently degrading every call site.
var (
	defaultStemmer *Stemmer
	defaultLexicon *Lexicon
)

func init() {
	prefixes, err := LoadAffixes(bytes.NewReader(data.Prefixes))
	if err != nil {
		panic(fmt.Errorf("stemmer: load default prefixes: %w", err))
	}
	infixes, err := LoadAffixes(bytes.NewReader(data.Infixes))
	if err != nil {
		panic(fmt.Errorf("stemmer: load default infixes: %w", err))
	}
	suffixes, err := LoadAffixes(bytes.NewReader(data.Suffixes))
	if err != nil {
		panic(fmt.Errorf("stemmer: load default suffixes: %w", err))
	}
	lex, err := LoadLexicon(bytes.NewReader(data.Lexicon))
	if err != nil {
		panic(fmt.Errorf("stemmer: load default lexicon: %w", err))
	}

	defaultStemmer = NewStemmer(prefixes, infixes, suffixes)
	defaultLexicon = lex
}

// DefaultLexicon returns the package's embedded default lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// Stem returns the single best stem for word, using the default
// embedded affix lists and lexicon.
func Stem(word string) Candidate {
	return defaultStemmer.Stem(word, defaultLexicon)
}

// Candidates returns every surviving candidate stem for word, sorted
// by score descending, using the default embedded affix lists and
// lexicon. The first entry is not necessarily the one Stem picks,
// since Stem also applies its transformation/contraction preference.
func Candidates(word string) []Candidate {
	return defaultStemmer.Candidates(word, defaultLexicon)
}

// StemText tokenizes text and stems every resulting word, using the
// default embedded affix lists, lexicon, and tok as the tokenizer.
func StemText(text string, tok Tokenizer, cfg TextConfig) []Candidate {
	return defaultStemmer.StemText(text, defaultLexicon, tok, cfg)
}
