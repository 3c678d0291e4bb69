package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/dustin/go-humanize"
)

// newPrompt opens an interactive line reader. history may be empty.
func newPrompt(history string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          menuPrompt,
		HistoryFile:     history,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// resolveDateKeyword maps a -date flag value to an ISO date.
// It accepts yesterday, today, tomorrow or an ISO date.
func resolveDateKeyword(value string, today time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case DateYesterday:
		return today.AddDate(0, 0, -1).Format(isoDateLayout), nil
	case DateToday:
		return today.Format(isoDateLayout), nil
	case DateTomorrow:
		return today.AddDate(0, 0, 1).Format(isoDateLayout), nil
	}
	t, err := time.Parse(isoDateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("invalid date %q: want %s, %s, %s or YYYY-MM-DD", value, DateYesterday, DateToday, DateTomorrow)
	}
	return t.Format(isoDateLayout), nil
}

// selectDate asks for yesterday, today, tomorrow or a date from the
// list. An invalid menu choice asks again; an invalid list choice falls
// back to yesterday.
func selectDate(r lineReader, out io.Writer, today time.Time, dates []string) (string, error) {
	presets := map[string]string{
		ChoiceYesterday: today.AddDate(0, 0, -1).Format(isoDateLayout),
		ChoiceToday:     today.Format(isoDateLayout),
		ChoiceTomorrow:  today.AddDate(0, 0, 1).Format(isoDateLayout),
	}

	for {
		fmt.Fprintln(out, "Choose a date:")
		fmt.Fprintf(out, "  %s. Yesterday\n", ChoiceYesterday)
		fmt.Fprintf(out, "  %s. Today\n", ChoiceToday)
		fmt.Fprintf(out, "  %s. Tomorrow\n", ChoiceTomorrow)
		fmt.Fprintf(out, "  %s. From list\n", ChoiceFromList)

		r.SetPrompt(menuPrompt)
		line, err := r.Readline()
		if err != nil {
			return "", err
		}
		choice := strings.TrimSpace(line)
		if iso, ok := presets[choice]; ok {
			return iso, nil
		}
		if choice == ChoiceFromList {
			break
		}
		fmt.Fprintf(out, "%s\n\n", ErrorInvalidChoice)
	}

	fmt.Fprintln(out, "\nAvailable dates:")
	for i, iso := range dates {
		fmt.Fprintf(out, "  %d. %s (%s)\n", i+1, formatGermanDate(iso), relativeDay(iso, today))
	}

	r.SetPrompt(fmt.Sprintf("Choose date [1-%d]: ", len(dates)))
	line, err := r.Readline()
	if err != nil {
		return "", err
	}
	if i, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && i >= 1 && i <= len(dates) {
		return dates[i-1], nil
	}
	fmt.Fprintln(out, ErrorListFallback)
	return presets[ChoiceYesterday], nil
}

// relativeDay describes iso relative to today, such as "2 days ago".
func relativeDay(iso string, today time.Time) string {
	t, err := time.ParseInLocation(isoDateLayout, iso, today.Location())
	if err != nil {
		return iso
	}
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	if t.Equal(day) {
		return DateToday
	}
	return humanize.RelTime(t, day, "ago", "from now")
}
