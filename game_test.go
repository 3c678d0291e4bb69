package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isogramm/internal/puzzle"
	"isogramm/internal/types"
)

var testToday = time.Date(2024, 5, 2, 15, 4, 0, 0, time.UTC)

// scriptedReader answers Readline calls from a fixed script.
type scriptedReader struct {
	lines   []string
	prompts []string
}

func (r *scriptedReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func (r *scriptedReader) SetPrompt(prompt string) {
	r.prompts = append(r.prompts, prompt)
}

func testApp(out io.Writer) *App {
	cfg := Config{
		DataPath: "data.json",
		Rules: RulesConfig{
			Target:          80,
			IsogramPoints:   10,
			ShortWordPoints: 1,
			MinWordLength:   4,
		},
	}
	return &App{
		Config:   cfg,
		Pipeline: puzzle.NewPipeline(cfg.PuzzleRules()),
		Out:      out,
		Now:      func() time.Time { return testToday },
	}
}

func TestResolveDateKeyword(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"yesterday", "2024-05-01"},
		{"Today", "2024-05-02"},
		{" tomorrow ", "2024-05-03"},
		{"2023-12-24", "2023-12-24"},
	}
	for _, tt := range tests {
		got, err := resolveDateKeyword(tt.value, testToday)
		require.NoError(t, err, tt.value)
		assert.Equal(t, tt.want, got, tt.value)
	}

	_, err := resolveDateKeyword("24.12.2023", testToday)
	assert.Error(t, err)
}

func TestSelectDatePresets(t *testing.T) {
	tests := []struct {
		choice string
		want   string
	}{
		{ChoiceYesterday, "2024-05-01"},
		{ChoiceToday, "2024-05-02"},
		{ChoiceTomorrow, "2024-05-03"},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		r := &scriptedReader{lines: []string{tt.choice}}
		got, err := selectDate(r, &out, testToday, nil)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
		assert.Contains(t, out.String(), "Choose a date:")
	}
}

func TestSelectDateRepromptsOnInvalidChoice(t *testing.T) {
	var out bytes.Buffer
	r := &scriptedReader{lines: []string{"9", "x", ChoiceToday}}
	got, err := selectDate(r, &out, testToday, nil)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", got)
	assert.Equal(t, 2, strings.Count(out.String(), ErrorInvalidChoice))
	assert.Len(t, r.prompts, 3)
}

func TestSelectDateFromList(t *testing.T) {
	dates := []string{"2024-04-28", "2024-05-02", "2024-05-09"}

	var out bytes.Buffer
	r := &scriptedReader{lines: []string{ChoiceFromList, "3"}}
	got, err := selectDate(r, &out, testToday, dates)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-09", got)

	listing := out.String()
	assert.Contains(t, listing, "1. 28.04.2024")
	assert.Contains(t, listing, "2. 02.05.2024 (today)")
	assert.Contains(t, listing, "3. 09.05.2024")
	assert.Contains(t, listing, "ago")
	assert.Contains(t, listing, "from now")
	assert.Equal(t, "Choose date [1-3]: ", r.prompts[len(r.prompts)-1])
}

func TestSelectDateListFallsBackToYesterday(t *testing.T) {
	var out bytes.Buffer
	r := &scriptedReader{lines: []string{ChoiceFromList, "7"}}
	got, err := selectDate(r, &out, testToday, []string{"2024-04-28"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got)
	assert.Contains(t, out.String(), ErrorListFallback)
}

func TestSelectDateEOF(t *testing.T) {
	_, err := selectDate(&scriptedReader{}, io.Discard, testToday, nil)
	assert.ErrorIs(t, err, io.EOF)
}

func TestChooseDateUsesFlag(t *testing.T) {
	app := testApp(io.Discard)
	opened := false
	got, err := app.chooseDate(context.Background(), nil, "today", func() (lineReader, func() error, error) {
		opened = true
		return nil, nil, errors.New("unexpected")
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-02", got)
	assert.False(t, opened)
}

func TestChooseDatePrompts(t *testing.T) {
	app := testApp(io.Discard)
	closed := false
	r := &scriptedReader{lines: []string{ChoiceYesterday}}
	got, err := app.chooseDate(context.Background(), nil, "", func() (lineReader, func() error, error) {
		return r, func() error { closed = true; return nil }, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got)
	assert.True(t, closed)
}

func TestEvaluateDate(t *testing.T) {
	pf, err := parsePuzzleFile([]byte(testPuzzleJSON))
	require.NoError(t, err)

	var out bytes.Buffer
	app := testApp(&out)
	require.NoError(t, app.evaluateDate(newRunContext(context.Background()), pf, "2024-05-02"))

	report := out.String()
	assert.Contains(t, report, " Puzzle #1    Date: 02.05.2024")
	assert.Contains(t, report, "Main isogram (10 points): master")
	assert.Contains(t, report, "More isograms (10 points each):\n  stream\n")
	assert.Contains(t, report, "Selection for >=80 points: 20 points with 2 words")
	assert.Contains(t, report, "   1. stream 10 points\n")
	assert.Contains(t, report, "   2. mast   10 points\n")
	assert.Contains(t, report, "Puzzle #?: error, skipping (isogram:")

	skipAt := strings.Index(report, "Puzzle #?")
	resultAt := strings.Index(report, "Puzzle #1")
	assert.Less(t, resultAt, skipAt, "outcomes are reported in input order")
}

func TestEvaluateDateNoPuzzles(t *testing.T) {
	pf := types.PuzzleFile{"2024-05-01": nil}
	err := testApp(io.Discard).evaluateDate(context.Background(), pf, "2024-05-01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "01.05.2024")

	err = testApp(io.Discard).evaluateDate(context.Background(), pf, "2030-01-01")
	assert.Error(t, err)
}

func TestEvaluateDateDump(t *testing.T) {
	pf, err := parsePuzzleFile([]byte(testPuzzleJSON))
	require.NoError(t, err)

	var out bytes.Buffer
	app := testApp(&out)
	app.Dump = true
	require.NoError(t, app.evaluateDate(context.Background(), pf, "2024-05-02"))
	assert.Contains(t, out.String(), "MainIsogram:")
}

func TestPrintResultNoExtras(t *testing.T) {
	var out bytes.Buffer
	res := &types.PuzzleResult{
		ID:          "4",
		MainIsogram: "plan",
		MainPoints:  10,
		Selection: types.Selection{
			Chosen:      []types.ScoredWord{{Word: "noon", Points: 1}},
			TotalPoints: 1,
		},
	}
	printResult(&out, res, "2024-05-02", testApp(nil).Config.Rules)

	report := out.String()
	assert.Contains(t, report, "  (none)\n")
	assert.Contains(t, report, "1 point with 1 word\n")
	assert.Contains(t, report, "   1. noon 1 point\n")
}
