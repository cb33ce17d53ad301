package usecase

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"hook-notifier/internal/config"
	"hook-notifier/internal/domain/model"
)

const (
	maxCommandDetails  = 100
	defaultActivityURL = "#"
)

// Summarize derives a title and details line from a hook event. A file path
// wins over a command; with neither the tool name alone is used.
func Summarize(event model.HookEvent) model.Summary {
	tool := event.ToolName
	input := event.ToolInput

	switch {
	case input.FilePath != "":
		return model.Summary{
			Title:   fmt.Sprintf("%s: %s", tool, baseName(input.FilePath)),
			Details: input.FilePath,
		}
	case input.Command != "":
		program := "command"
		if fields := strings.Fields(input.Command); len(fields) > 0 {
			program = fields[0]
		}
		return model.Summary{
			Title:   fmt.Sprintf("%s: %s", tool, program),
			Details: truncateRunes(input.Command, maxCommandDetails),
		}
	default:
		return fallbackSummary(tool)
	}
}

// baseName returns the text after the last slash, so "dir/" yields "".
func baseName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}

func fallbackSummary(tool string) model.Summary {
	return model.Summary{
		Title:   "Used " + tool,
		Details: "Tool: " + tool,
	}
}

// applyOverrides replaces derived values with configured ones when set, even
// when they are set to an empty string.
func applyOverrides(summary model.Summary, cfg *config.Config) (model.Summary, string) {
	url := defaultActivityURL
	if cfg == nil {
		return summary, url
	}
	if cfg.ActivityTitle != nil {
		summary.Title = *cfg.ActivityTitle
	}
	if cfg.ActivityDetails != nil {
		summary.Details = *cfg.ActivityDetails
	}
	if cfg.ActivityURL != nil {
		url = *cfg.ActivityURL
	}
	return summary, url
}

// truncateRunes keeps the first limit characters and marks the cut with "...".
func truncateRunes(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return string(runes[:limit]) + "..."
}
