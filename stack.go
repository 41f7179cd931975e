package erroz

import (
	"fmt"
	"regexp"
	"runtime"
	"strings"
)

// maxStackDepth bounds the number of frames captured per instance.
const maxStackDepth = 32

var framePattern = regexp.MustCompile(`\n\s*at .+\r?\n`)

// SanitizeStack removes the first call frame line from a stack trace.
//
// The trace is expected to start with a "Name: message" header line followed
// by one frame per line, each beginning with optional whitespace and "at ".
// The header and every remaining frame are kept in their original order.
// If no frame line followed by another line is found, raw is returned
// unchanged.
func SanitizeStack(raw string) string {
	loc := framePattern.FindStringIndex(raw)
	if loc == nil {
		return raw
	}
	return raw[:loc[0]] + "\n" + raw[loc[1]:]
}

// callers returns the program counters of the goroutine's stack, starting
// skip frames above the function calling callers.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	// +2 skips runtime.Callers and callers itself.
	n := runtime.Callers(skip+2, pcs)
	return pcs[:n]
}

// formatFrames renders one "at" line per frame, each preceded by a newline.
func formatFrames(pcs []uintptr) string {
	var b strings.Builder

	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" || frame.File != "" {
			fmt.Fprintf(&b, "\n    at %s (%s:%d)", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}

	return b.String()
}
