package main

import (
	"context"
	"log"
	"strings"
	"time"
)

// debugLogging enables logDebug output. Set from LOG_LEVEL.
var debugLogging bool

// setLogLevel switches debug logging on for LOG_LEVEL=debug.
func setLogLevel(level string) {
	debugLogging = strings.EqualFold(strings.TrimSpace(level), "debug")
}

// formatGermanDate turns an ISO date into DD.MM.YYYY.
func formatGermanDate(iso string) string {
	t, err := time.Parse(isoDateLayout, iso)
	if err != nil {
		return iso
	}
	return t.Format(germanDateLayout)
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// runPrefix returns the run ID log prefix carried by ctx, if any.
func runPrefix(ctx context.Context) string {
	runID, _ := ctx.Value(runIDKey).(string)
	if runID == "" {
		return ""
	}
	return "[run_id=" + runID + "] "
}

// logDebug logs a debug-level message when LOG_LEVEL=debug.
func logDebug(format string, v ...any) {
	if debugLogging {
		log.Printf("[DEBUG] "+format, v...)
	}
}

// logInfo logs an info-level message.
func logInfo(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

// logWarn logs a warning-level message.
func logWarn(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}

// logFatal logs a fatal error and exits.
func logFatal(format string, v ...any) {
	log.Fatalf("[FATAL] "+format, v...)
}
