package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UnknownID is shown for puzzles without an "nr" field.
const UnknownID = "?"

// PuzzleFile maps ISO dates to the puzzles published on that day.
type PuzzleFile map[string][]PuzzleRecord

type PuzzleRecord struct {
	Nr            json.RawMessage `json:"nr,omitempty"`
	Letter        *string         `json:"letter"`
	Isogram       *string         `json:"isogram"`
	Possibilities []string        `json:"possibilities"`
}

// ID returns the text form of the puzzle number, or UnknownID.
func (r PuzzleRecord) ID() string {
	raw := strings.TrimSpace(string(r.Nr))
	if raw == "" || raw == "null" {
		return UnknownID
	}
	var s string
	if err := json.Unmarshal(r.Nr, &s); err == nil {
		return s
	}
	return raw
}

// ScoredWord is a decoded candidate together with its points.
type ScoredWord struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
}

type Selection struct {
	Chosen      []ScoredWord `json:"chosen"`
	TotalPoints int          `json:"totalPoints"`
}

// Reached reports whether the selection met the target.
func (s Selection) Reached(target int) bool {
	return s.TotalPoints >= target
}

type PuzzleResult struct {
	ID            string       `json:"id"`
	MainIsogram   string       `json:"mainIsogram"`
	MainPoints    int          `json:"mainPoints"`
	ExtraIsograms []string     `json:"extraIsograms"`
	Candidates    []ScoredWord `json:"candidates"`
	Selection     Selection    `json:"selection"`
	// Dropped counts possibilities that could not be decoded.
	Dropped int `json:"dropped"`
}

// SkippedPuzzle is reported instead of a result when a required field
// cannot be decoded.
type SkippedPuzzle struct {
	ID    string
	Field string
	Err   error
}

func (s *SkippedPuzzle) Error() string {
	return fmt.Sprintf("puzzle #%s skipped: %s: %v", s.ID, s.Field, s.Err)
}

func (s *SkippedPuzzle) Unwrap() error {
	return s.Err
}

// Outcome holds exactly one of Result or Skipped.
type Outcome struct {
	Result  *PuzzleResult
	Skipped *SkippedPuzzle
}
