package main

// Date selection menu choices
const (
	ChoiceYesterday = "1"
	ChoiceToday     = "2"
	ChoiceTomorrow  = "3"
	ChoiceFromList  = "4"
)

// Date flag keywords
const (
	DateYesterday = "yesterday"
	DateToday     = "today"
	DateTomorrow  = "tomorrow"
)

// Date layouts
const (
	isoDateLayout    = "2006-01-02"
	germanDateLayout = "02.01.2006"
)

// Report layout
const (
	separatorWidth = 50
	menuPrompt     = "Choice [1-4]: "
)

// Error message constants
const (
	ErrorNoPuzzles     = "no puzzles for"
	ErrorNotAnObject   = "top-level value is not an object"
	ErrorInvalidChoice = "Invalid choice, please try again."
	ErrorListFallback  = "Invalid choice, using yesterday."
)

// Context key constants
const (
	runIDKey contextKey = "run_id"
)

type contextKey string
