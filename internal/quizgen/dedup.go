package quizgen

import (
	"fmt"
	"strings"
)

// buildAvoidThemes formats recently used themes for the prompt, respecting
// the max limit. Returns "None" when there is no history.
func buildAvoidThemes(themes []string, max int) string {
	if len(themes) == 0 {
		return "None"
	}

	// Keep only the most recent N themes.
	if max > 0 && len(themes) > max {
		themes = themes[len(themes)-max:]
	}

	var b strings.Builder
	for i, th := range themes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, th)
	}
	return strings.TrimRight(b.String(), "\n")
}
