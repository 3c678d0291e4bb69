package puzzle

import (
	"errors"

	"github.com/samber/lo"

	"isogramm/internal/types"
)

// Pipeline decodes, scores and selects words for single puzzles.
type Pipeline struct {
	Rules Rules
}

func NewPipeline(rules Rules) *Pipeline {
	return &Pipeline{Rules: rules}
}

// Process evaluates one puzzle. A puzzle whose letter or isogram field
// is missing or cannot be decoded yields a *types.SkippedPuzzle error.
// Undecodable possibilities are dropped and counted.
func (p *Pipeline) Process(rec types.PuzzleRecord) (*types.PuzzleResult, error) {
	id := rec.ID()

	middle, err := decodeRequired(rec.Letter)
	if err != nil {
		return nil, &types.SkippedPuzzle{ID: id, Field: "letter", Err: err}
	}
	mainIsogram, err := decodeRequired(rec.Isogram)
	if err != nil {
		return nil, &types.SkippedPuzzle{ID: id, Field: "isogram", Err: err}
	}

	words, dropped := DecodeCandidates(rec.Possibilities)
	candidates := p.Rules.ScoreAll(p.Rules.Filter(words, middle))
	filtered := lo.Map(candidates, func(c types.ScoredWord, _ int) string { return c.Word })

	return &types.PuzzleResult{
		ID:            id,
		MainIsogram:   mainIsogram,
		MainPoints:    p.Rules.Score(mainIsogram),
		ExtraIsograms: FindExtraIsograms(filtered, mainIsogram),
		Candidates:    candidates,
		Selection:     Select(candidates, p.Rules.Target),
		Dropped:       dropped,
	}, nil
}

// ProcessAll evaluates records in order. It never stops early: every
// record produces exactly one outcome.
func (p *Pipeline) ProcessAll(records []types.PuzzleRecord) []types.Outcome {
	outcomes := make([]types.Outcome, 0, len(records))
	for _, rec := range records {
		res, err := p.Process(rec)
		if err != nil {
			var skipped *types.SkippedPuzzle
			if !errors.As(err, &skipped) {
				skipped = &types.SkippedPuzzle{ID: rec.ID(), Err: err}
			}
			outcomes = append(outcomes, types.Outcome{Skipped: skipped})
			continue
		}
		outcomes = append(outcomes, types.Outcome{Result: res})
	}
	return outcomes
}

// DecodeCandidates decodes every code it can and reports how many
// codes were dropped.
func DecodeCandidates(codes []string) ([]string, int) {
	words := make([]string, 0, len(codes))
	for _, code := range codes {
		w, err := DecodeWord(code)
		if err != nil {
			continue
		}
		words = append(words, w)
	}
	return words, len(codes) - len(words)
}

func decodeRequired(code *string) (string, error) {
	if code == nil {
		return "", ErrMissingField
	}
	return DecodeWord(*code)
}
