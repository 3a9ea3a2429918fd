package cli

import (
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	defaultRuleWidth = 40
	maxRuleWidth     = 80
)

// terminalWidth is a test seam for term.GetSize on stdout.
var terminalWidth = func() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultRuleWidth
	}
	return min(w, maxRuleWidth)
}

// rule returns a horizontal separator as wide as the terminal allows.
func rule() string {
	return strings.Repeat("-", terminalWidth())
}
