package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"isogramm/internal/puzzle"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		logFatal("Failed to load configuration: %v", err)
	}
	setLogLevel(cfg.LogLevel)

	var (
		dateFlag = flag.String("date", "", "date to evaluate: yesterday, today, tomorrow or YYYY-MM-DD (prompts when empty)")
		target   = flag.Int("target", cfg.Rules.Target, "points the selection should reach")
		dump     = flag.Bool("dump", false, "pretty-print every result after the report")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [data.json]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}
	if flag.NArg() == 1 {
		cfg.DataPath = flag.Arg(0)
	}
	cfg.Rules.Target = *target
	if err := cfg.Validate(); err != nil {
		logFatal("Invalid configuration: %v", err)
	}

	app := &App{
		Config:   cfg,
		Pipeline: puzzle.NewPipeline(cfg.PuzzleRules()),
		Out:      os.Stdout,
		Now:      time.Now,
		Dump:     *dump,
	}

	ctx := newRunContext(context.Background())
	if err := app.run(ctx, *dateFlag); err != nil {
		logFatal("%s%v", runPrefix(ctx), err)
	}
}

// run loads the puzzle file, picks a date and reports its puzzles.
func (app *App) run(ctx context.Context, dateFlag string) error {
	logInfo("%sStarting with target %d", runPrefix(ctx), app.Config.Rules.Target)

	pf, err := loadPuzzleFile(app.Config.DataPath)
	if err != nil {
		return err
	}

	isoDate, err := app.chooseDate(ctx, pf, dateFlag, func() (lineReader, func() error, error) {
		rl, err := newPrompt(app.Config.HistoryFile)
		if err != nil {
			return nil, nil, err
		}
		return rl, rl.Close, nil
	})
	if err != nil {
		return fmt.Errorf("select date: %w", err)
	}
	return app.evaluateDate(ctx, pf, isoDate)
}
