// Package data embeds the default lexicon and affix lists used by the
// package-level stemmer.Stem/Candidates/StemText convenience functions.
//
// Regenerate these files with cmd/lexgen rather than editing them by hand.
package data

import _ "embed"

//go:embed lexicon.txt
var Lexicon []byte

//go:embed prefixes.txt
var Prefixes []byte

//go:embed infixes.txt
var Infixes []byte

//go:embed suffixes.txt
var Suffixes []byte
