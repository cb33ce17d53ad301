package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"

	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
)

// Filter gates notifications on a boolean expression over the activity, for
// example `tool == "Bash" && command =~ "^git "`.
type Filter struct {
	source string
	expr   *govaluate.EvaluableExpression
	logger ports.Logger
}

var _ ports.Filter = (*Filter)(nil)

// NewFilter compiles expression.
func NewFilter(expression string, logger ports.Logger) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, fmt.Errorf("empty filter expression")
	}
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, fmt.Errorf("compile filter %q: %w", expression, err)
	}
	return &Filter{source: expression, expr: expr, logger: logger}, nil
}

// Allow reports whether the activity passes the filter. Evaluation problems
// let the notification through.
func (f *Filter) Allow(ctx context.Context, activity model.Activity) bool {
	if f == nil || f.expr == nil {
		return true
	}

	result, err := f.expr.Evaluate(Parameters(activity))
	if err != nil {
		f.warn(ctx, "filter evaluation failed", "error", err)
		return true
	}
	matched, ok := result.(bool)
	if !ok {
		f.warn(ctx, "filter did not return a boolean", "result", result)
		return true
	}
	if !matched && f.logger != nil {
		f.logger.Debug(ctx, "notification filtered", "filter", f.source, "tool", activity.ToolName)
	}
	return matched
}

// Parameters exposes the activity to filter expressions.
func Parameters(activity model.Activity) map[string]interface{} {
	return map[string]interface{}{
		"event":     activity.EventName,
		"tool":      activity.ToolName,
		"agent":     activity.AgentName,
		"title":     activity.Title,
		"details":   activity.Details,
		"url":       activity.URL,
		"file_path": activity.FilePath,
		"command":   activity.Command,
	}
}

func (f *Filter) warn(ctx context.Context, msg string, args ...any) {
	if f.logger == nil {
		return
	}
	f.logger.Warn(ctx, msg, append(args, "filter", f.source)...)
}
