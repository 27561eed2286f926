// Command accuracy evaluates the stemmer against a CSV of known
// (inflection, expected_stem) pairs and reports accuracy plus average
// over/understemming.
//
//	go run ./cmd/accuracy -input examples.csv
//
// Input: a header-less two-column CSV, "inflection,expected_stem" per
// line. Output: a summary to stdout and, optionally, row-by-row
// results via -results.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/andrianllmm/tagalog-stemmer/stemmer"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("accuracy: ")

	inputPath := flag.String("input", "", "path to inflection,expected_stem CSV")
	resultsPath := flag.String("results", "", "optional path to write per-row results CSV")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("usage: accuracy -input <file> [-results <file>]")
	}

	pairs, err := readPairs(*inputPath)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	if len(pairs) == 0 {
		log.Fatal("input contains no rows")
	}

	results := evaluate(pairs)
	report(results)

	if *resultsPath != "" {
		if err := writeResults(*resultsPath, results); err != nil {
			log.Fatalf("write results: %v", err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(results), *resultsPath)
	}
}

type pair struct {
	inflection, expected string
}

type result struct {
	pair
	got           string
	correct       bool
	understemming int // predicted retained characters it should have stripped
	overstemming  int // predicted stripped characters it should have kept
}

func readPairs(path string) ([]pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2

	var pairs []pair
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{inflection: row[0], expected: row[1]})
	}
	return pairs, nil
}

// evaluate stems every inflection and scores it against the expected
// stem. A predicted stem shorter than the expected stem has
// overstemmed by the length difference; a longer one has understemmed
// by it. A wrong stem of the same length counts as neither, only
// incorrect.
func evaluate(pairs []pair) []result {
	out := make([]result, 0, len(pairs))
	for _, p := range pairs {
		got := stemmer.Stem(p.inflection).Text
		r := result{pair: p, got: got, correct: got == p.expected}

		switch {
		case got == p.expected:
			// exact match, no error
		case len(got) < len(p.expected):
			r.overstemming = len(p.expected) - len(got)
		case len(got) > len(p.expected):
			r.understemming = len(got) - len(p.expected)
		}
		out = append(out, r)
	}
	return out
}

func report(results []result) {
	correct := 0
	totalOver, totalUnder := 0, 0
	for _, r := range results {
		if r.correct {
			correct++
		}
		totalOver += r.overstemming
		totalUnder += r.understemming
	}

	n := float64(len(results))
	fmt.Printf("Accuracy:           %.4f (%d/%d)\n", float64(correct)/n, correct, len(results))
	fmt.Printf("Avg overstemming:   %.4f\n", float64(totalOver)/n)
	fmt.Printf("Avg understemming:  %.4f\n", float64(totalUnder)/n)
}

func writeResults(path string, results []result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"inflection", "expected", "got", "correct"}); err != nil {
		return err
	}
	for _, r := range results {
		if err := w.Write([]string{
			r.inflection, r.expected, r.got, fmt.Sprintf("%t", r.correct),
		}); err != nil {
			return err
		}
	}
	return w.Error()
}
