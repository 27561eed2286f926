// Command lexgen regenerates stemmer/data's lexicon and affix text
// files from raw word lists: lowercased, trimmed, deduplicated, and
// sorted (lexicon alphabetically, affixes by length).
//
//	go run ./cmd/lexgen -input raw_words.txt -out stemmer/data/lexicon.txt
//	go run ./cmd/lexgen -affixes -input raw_prefixes.txt -out stemmer/data/prefixes.txt
//
// Output: whichever file -out names (commit it). Regenerate whenever
// the source word list changes.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
)

const scannerBufSize = 1 << 20 // 1 MB

func main() {
	inputPath := flag.String("input", "", "path to a raw word/affix list, one per line")
	outputPath := flag.String("out", "", "output path for the generated file")
	asAffixes := flag.Bool("affixes", false, "sort by rune length instead of alphabetically")
	flag.Parse()

	if *inputPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Usage: lexgen -input <file> -out <file> [-affixes]")
		os.Exit(1)
	}

	f, err := os.Open(*inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: open input: %v\n", err)
		os.Exit(1)
	}

	scanner := bufio.NewScanner(f)
	buf := make([]byte, scannerBufSize)
	scanner.Buffer(buf, scannerBufSize)

	seen := make(map[string]struct{})
	for scanner.Scan() {
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seen[line] = struct{}{}
	}
	scanErr := scanner.Err()

	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: close input: %v\n", err)
		os.Exit(1)
	}
	if scanErr != nil {
		fmt.Fprintf(os.Stderr, "lexgen: scan error: %v\n", scanErr)
		os.Exit(1)
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}

	if *asAffixes {
		sort.Slice(words, func(i, j int) bool {
			li, lj := len([]rune(words[i])), len([]rune(words[j]))
			if li != lj {
				return li < lj
			}
			return words[i] < words[j]
		})
	} else {
		sort.Strings(words)
	}

	out, err := os.Create(*outputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: create output: %v\n", err)
		os.Exit(1)
	}

	w := bufio.NewWriter(out)
	for _, word := range words {
		if _, writeErr := fmt.Fprintln(w, word); writeErr != nil {
			fmt.Fprintf(os.Stderr, "lexgen: write error: %v\n", writeErr)
			os.Exit(1)
		}
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: flush error: %v\n", err)
		os.Exit(1)
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "lexgen: close output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d entries to %s\n", len(words), *outputPath)
}
