package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kr/pretty"
	"github.com/samber/lo"

	"isogramm/internal/types"
)

// printResult writes the report for one evaluated puzzle.
func printResult(out io.Writer, res *types.PuzzleResult, isoDate string, rules RulesConfig) {
	sep := strings.Repeat("=", separatorWidth)
	fmt.Fprintf(out, "\n%s\n Puzzle #%s    Date: %s\n%s\n\n", sep, res.ID, formatGermanDate(isoDate), sep)

	fmt.Fprintf(out, "Main isogram (%d point%s): %s\n\n", res.MainPoints, plural(res.MainPoints), res.MainIsogram)

	fmt.Fprintf(out, "More isograms (%d point%s each):\n", rules.IsogramPoints, plural(rules.IsogramPoints))
	extras := "(none)"
	if len(res.ExtraIsograms) > 0 {
		extras = strings.Join(res.ExtraIsograms, ", ")
	}
	fmt.Fprintf(out, "  %s\n\n", extras)

	sel := res.Selection
	fmt.Fprintf(out, "Selection for >=%d points: %d point%s with %d word%s\n",
		rules.Target, sel.TotalPoints, plural(sel.TotalPoints), len(sel.Chosen), plural(len(sel.Chosen)))
	width := lo.Max(lo.Map(sel.Chosen, func(sw types.ScoredWord, _ int) int { return len(sw.Word) }))
	for i, sw := range sel.Chosen {
		fmt.Fprintf(out, "  %2d. %-*s %d point%s\n", i+1, width, sw.Word, sw.Points, plural(sw.Points))
	}
	fmt.Fprintln(out)
}

// printSkipped writes the notice for a puzzle that could not be evaluated.
func printSkipped(out io.Writer, s *types.SkippedPuzzle) {
	fmt.Fprintf(out, "Puzzle #%s: error, skipping (%s: %v)\n", s.ID, s.Field, s.Err)
}

// dumpResult pretty-prints res for -dump.
func dumpResult(out io.Writer, res *types.PuzzleResult) {
	pretty.Fprintf(out, "%# v\n", res)
}
