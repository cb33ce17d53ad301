package usecase

import (
	"testing"
	"time"

	"hook-notifier/internal/domain/model"
)

func TestBuildNotification(t *testing.T) {
	at := time.Date(2026, 10, 19, 17, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
	activity := model.Activity{
		EventName: "PostToolUse",
		ToolName:  "Edit",
		AgentName: "reviewer",
		Title:     "Edit: c.txt",
		Details:   "/a/b/c.txt",
		URL:       "#",
	}

	n := BuildNotification(activity, at)

	if n.Title != "🤖 Claude Code Activity" {
		t.Fatalf("unexpected title %q", n.Title)
	}
	if n.Description != "reviewer completed a task" {
		t.Fatalf("unexpected description %q", n.Description)
	}
	if n.Color != 0x5865F2 {
		t.Fatalf("unexpected color %#x", n.Color)
	}
	if !n.Timestamp.Equal(at) || n.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp must be the same instant in UTC, got %v", n.Timestamp)
	}

	want := []model.NotificationField{
		{Name: "⚡ Hook Event", Value: "`PostToolUse`", Inline: true},
		{Name: "🤖 Agent", Value: "reviewer", Inline: true},
		{Name: "📋 Activity", Value: "[Edit: c.txt](#)"},
		{Name: "📝 Details", Value: "```\n/a/b/c.txt\n```"},
	}
	if len(n.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(n.Fields))
	}
	for i := range want {
		if n.Fields[i] != want[i] {
			t.Fatalf("field %d: got %+v, want %+v", i, n.Fields[i], want[i])
		}
	}
}
