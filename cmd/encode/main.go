package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/samber/lo"

	"isogramm/internal/puzzle"
	"isogramm/internal/types"
)

func main() {
	var (
		date    = flag.String("date", "", "ISO date to file the puzzle under (prints a bare record when empty)")
		nr      = flag.String("nr", "", "Puzzle number")
		letter  = flag.String("letter", "", "Middle letters")
		isogram = flag.String("isogram", "", "Main isogram")
	)
	flag.Parse()

	if *letter == "" || *isogram == "" {
		log.Fatal("Usage: go run ./cmd/encode -letter=<letters> -isogram=<word> [-nr=<n>] [-date=YYYY-MM-DD] word...")
	}

	rec, err := buildRecord(*nr, *letter, *isogram, flag.Args())
	if err != nil {
		log.Fatalf("Failed to encode puzzle: %v", err)
	}

	var out any = rec
	if *date != "" {
		out = types.PuzzleFile{*date: {rec}}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// buildRecord encodes the uppercase form of every word, the way puzzle
// files store them.
func buildRecord(nr, letter, isogram string, words []string) (types.PuzzleRecord, error) {
	var rec types.PuzzleRecord
	if nr != "" {
		raw, err := json.Marshal(nr)
		if err != nil {
			return rec, err
		}
		rec.Nr = raw
	}

	l, err := puzzle.Encode(strings.ToUpper(letter))
	if err != nil {
		return rec, fmt.Errorf("letter: %w", err)
	}
	iso, err := puzzle.Encode(strings.ToUpper(isogram))
	if err != nil {
		return rec, fmt.Errorf("isogram: %w", err)
	}
	rec.Letter, rec.Isogram = &l, &iso

	var encErr error
	rec.Possibilities = lo.FilterMap(words, func(w string, _ int) (string, bool) {
		code, err := puzzle.Encode(strings.ToUpper(w))
		if err != nil {
			encErr = fmt.Errorf("word %q: %w", w, err)
			return "", false
		}
		return code, true
	})
	if encErr != nil {
		return rec, encErr
	}
	return rec, nil
}
