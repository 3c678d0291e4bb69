package puzzle

import (
	"strings"

	"github.com/samber/lo"

	"isogramm/internal/types"
)

// Default game rules.
const (
	DefaultTarget          = 80
	DefaultIsogramPoints   = 10
	DefaultShortWordPoints = 1
	DefaultMinWordLength   = 4
)

// Rules holds the scoring constants of the game. Words of exactly
// MinWordLength letters that are not isograms score ShortWordPoints.
type Rules struct {
	Target          int
	IsogramPoints   int
	ShortWordPoints int
	MinWordLength   int
}

func DefaultRules() Rules {
	return Rules{
		Target:          DefaultTarget,
		IsogramPoints:   DefaultIsogramPoints,
		ShortWordPoints: DefaultShortWordPoints,
		MinWordLength:   DefaultMinWordLength,
	}
}

// IsIsogram reports whether no character occurs twice in word.
func IsIsogram(word string) bool {
	chars := []rune(word)
	return len(lo.Uniq(chars)) == len(chars)
}

// Score returns the points for word. The isogram rule wins over the
// short word rule.
func (r Rules) Score(word string) int {
	switch n := len([]rune(word)); {
	case IsIsogram(word):
		return r.IsogramPoints
	case n == r.MinWordLength:
		return r.ShortWordPoints
	default:
		return n
	}
}

// Filter keeps the words that are long enough and contain middle,
// preserving input order.
func (r Rules) Filter(words []string, middle string) []string {
	return lo.Filter(words, func(w string, _ int) bool {
		return len([]rune(w)) >= r.MinWordLength && strings.Contains(w, middle)
	})
}

// ScoreAll pairs every word with its points.
func (r Rules) ScoreAll(words []string) []types.ScoredWord {
	return lo.Map(words, func(w string, _ int) types.ScoredWord {
		return types.ScoredWord{Word: w, Points: r.Score(w)}
	})
}
