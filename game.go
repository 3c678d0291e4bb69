package main

import (
	"context"
	"fmt"

	"isogramm/internal/types"
)

// chooseDate returns the date to evaluate, from the -date flag when set
// and from the interactive prompt otherwise.
func (app *App) chooseDate(ctx context.Context, pf types.PuzzleFile, dateFlag string, openPrompt func() (lineReader, func() error, error)) (string, error) {
	today := app.Now()
	if dateFlag != "" {
		return resolveDateKeyword(dateFlag, today)
	}

	r, closePrompt, err := openPrompt()
	if err != nil {
		return "", fmt.Errorf("open prompt: %w", err)
	}
	defer func() {
		if err := closePrompt(); err != nil {
			logWarn("%sClosing prompt: %v", runPrefix(ctx), err)
		}
	}()
	return selectDate(r, app.Out, today, availableDates(pf))
}

// evaluateDate runs the pipeline over all puzzles of isoDate and writes
// the report. A missing date is an error; skipped puzzles are not.
func (app *App) evaluateDate(ctx context.Context, pf types.PuzzleFile, isoDate string) error {
	prefix := runPrefix(ctx)
	records := pf[isoDate]
	if len(records) == 0 {
		return fmt.Errorf("%s %s", ErrorNoPuzzles, formatGermanDate(isoDate))
	}
	logInfo("%sEvaluating %d puzzles for %s", prefix, len(records), isoDate)

	skipped := 0
	for _, outcome := range app.Pipeline.ProcessAll(records) {
		if outcome.Skipped != nil {
			skipped++
			logWarn("%s%v", prefix, outcome.Skipped)
			printSkipped(app.Out, outcome.Skipped)
			continue
		}

		res := outcome.Result
		if res.Dropped > 0 {
			logDebug("%sPuzzle #%s: dropped %d undecodable possibilities", prefix, res.ID, res.Dropped)
		}
		if !res.Selection.Reached(app.Config.Rules.Target) {
			logInfo("%sPuzzle #%s: target %d not reachable, best is %d", prefix, res.ID, app.Config.Rules.Target, res.Selection.TotalPoints)
		}
		printResult(app.Out, res, isoDate, app.Config.Rules)
		if app.Dump || debugLogging {
			dumpResult(app.Out, res)
		}
	}

	logInfo("%sDone: %d evaluated, %d skipped", prefix, len(records)-skipped, skipped)
	return nil
}
