package main

import (
	"io"
	"time"

	"isogramm/internal/puzzle"
)

// App holds everything one run of the solver needs.
type App struct {
	Config   Config
	Pipeline *puzzle.Pipeline
	Out      io.Writer
	Now      func() time.Time
	Dump     bool
}

// lineReader is the part of *readline.Instance used for date selection.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}
