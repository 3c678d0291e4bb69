package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/samber/lo"

	"isogramm/internal/types"
)

// loadPuzzleFile reads the JSON puzzle file at path. The top-level value
// must be an object keyed by ISO date.
func loadPuzzleFile(path string) (types.PuzzleFile, error) {
	logInfo("Loading puzzles from %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read puzzle file: %w", err)
	}
	return parsePuzzleFile(data)
}

func parsePuzzleFile(data []byte) (types.PuzzleFile, error) {
	var pf types.PuzzleFile
	if err := json.Unmarshal(data, &pf); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, errors.New(ErrorNotAnObject)
		}
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if pf == nil {
		return nil, errors.New(ErrorNotAnObject)
	}
	logInfo("Loaded puzzles for %d dates", len(pf))
	return pf, nil
}

// availableDates returns the valid ISO date keys of pf, sorted.
func availableDates(pf types.PuzzleFile) []string {
	dates := lo.Filter(lo.Keys(pf), func(key string, _ int) bool {
		if _, err := time.Parse(isoDateLayout, key); err != nil {
			logWarn("Ignoring puzzle key %q: not an ISO date", key)
			return false
		}
		return true
	})
	slices.Sort(dates)
	return dates
}
