package stemmer

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// AffixList is a set of affix strings kept sorted ascending by rune
// length, matching the reference implementation's
// sorted(affixes, key=len): shorter affixes are tried before longer
// ones. The rule families try every affix in the list, so the order
// does not stop a longer affix (e.g. "pang") from matching after a
// shorter one ("pa") has.
type AffixList []string

// LoadAffixes reads one affix per line (blank lines and lines
// starting with "#" are skipped), lowercases each, and returns them
// sorted ascending by rune length.
func LoadAffixes(r io.Reader) (AffixList, error) {
	var affixes AffixList
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		affixes = append(affixes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("stemmer: load affixes: %w", err)
	}
	sort.Slice(affixes, func(i, j int) bool {
		return len([]rune(affixes[i])) < len([]rune(affixes[j]))
	})
	return affixes, nil
}
