package puzzle

import (
	"cmp"
	"slices"

	"isogramm/internal/types"
)

// Select takes the highest scoring words until their total reaches
// target. Words with equal points keep their input order. When the
// target cannot be reached every word is chosen.
func Select(scored []types.ScoredWord, target int) types.Selection {
	sorted := slices.Clone(scored)
	slices.SortStableFunc(sorted, func(a, b types.ScoredWord) int {
		return cmp.Compare(b.Points, a.Points)
	})

	sel := types.Selection{Chosen: make([]types.ScoredWord, 0, len(sorted))}
	for _, sw := range sorted {
		sel.Chosen = append(sel.Chosen, sw)
		sel.TotalPoints += sw.Points
		if sel.TotalPoints >= target {
			break
		}
	}
	return sel
}
