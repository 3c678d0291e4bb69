package puzzle

import (
	"slices"

	"github.com/samber/lo"
)

// FindExtraIsograms returns the candidates that use exactly the letters
// of mainIsogram in another order. Each word appears once, in candidate order.
func FindExtraIsograms(candidates []string, mainIsogram string) []string {
	key := sortLetters(mainIsogram)
	extras := lo.Filter(candidates, func(w string, _ int) bool {
		return w != mainIsogram && len(w) == len(mainIsogram) && sortLetters(w) == key
	})
	return lo.Uniq(extras)
}

func sortLetters(word string) string {
	chars := []rune(word)
	slices.Sort(chars)
	return string(chars)
}
