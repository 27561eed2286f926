package stemmer

import "strings"

// dupContractionSuffixes are the enclitic shapes a hyphenated
// duplication's first half may carry: the "ng" linker (with its own
// g-strip/n-restoration variant, since "atin" + "ng" surfaces as
// "ating", not "atinng"), the 't contraction, and the bare "t" some
// speakers write without the apostrophe. "'y" is a stem_suf-only
// contraction and never applies here.
var dupContractionSuffixes = []string{"ng", "'t", "t"}

// stemDup undoes full reduplication: a hyphenated compound where the
// first half is a reduplicated, phonologically altered, or
// contracted copy of the second, which is the root ("ano-ano" ->
// "ano", "iba't-iba" -> "iba", "hapung-hapon" -> "hapon").
func stemDup(f frontier) frontier {
	out := frontier{}
	for _, cand := range f.slice() {
		addDupVariants(out, cand)
	}
	return out
}

func addDupVariants(out frontier, cand Candidate) {
	first, second, ok := splitDup(cand.Text)
	if !ok {
		return
	}

	if first == second {
		variant := cand.withText(second)
		variant.Dup = first
		out.add(variant)
		return
	}

	if len([]rune(first)) > 2 && len([]rune(second)) > 4 && strings.HasPrefix(second, first) {
		variant := cand.withText(second)
		variant.Dup = first
		out.add(variant)
	}

	if swapped, ok := swapLastUtoO(first); ok && swapped == second {
		variant := cand.withText(second)
		variant.Dup = second
		variant.PhonemeChange = "dup: o/u"
		out.add(variant)
	}

	for _, suf := range dupContractionSuffixes {
		if !strings.HasSuffix(first, suf) {
			continue
		}
		bases := []string{first[:len(first)-len(suf)]}
		if suf == "ng" {
			bases = append(bases, first[:len(first)-len(suf)]+"n")
		}
		for _, base := range bases {
			if base == second {
				variant := cand.withText(second)
				variant.Dup = second
				variant.Contraction = suf
				out.add(variant)
			}
			if swapped, ok := swapLastUtoO(base); ok && swapped == second {
				variant := cand.withText(second)
				variant.Dup = second
				variant.Contraction = suf
				variant.PhonemeChange = "dup: o/u"
				out.add(variant)
			}
		}
	}
}

// splitDup splits s on its one interior hyphen, requiring both halves
// to have more than one rune. Any other hyphen arrangement (none,
// more than one, or a hyphen at either end) is not a duplication.
func splitDup(s string) (first, second string, ok bool) {
	idx := strings.Index(s, "-")
	if idx <= 0 || idx >= len(s)-1 {
		return "", "", false
	}
	if strings.Count(s, "-") != 1 {
		return "", "", false
	}
	first, second = s[:idx], s[idx+1:]
	if len([]rune(first)) <= 1 || len([]rune(second)) <= 1 {
		return "", "", false
	}
	return first, second, true
}

// swapLastUtoO replaces the last 'u' in s with 'o'. Returns ("",
// false) if s contains no 'u'.
func swapLastUtoO(s string) (string, bool) {
	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == 'u' {
			runes[i] = 'o'
			return string(runes), true
		}
	}
	return "", false
}
