package usecase

import (
	"fmt"
	"time"

	"hook-notifier/internal/domain/model"
)

const (
	notificationTitle = "🤖 Claude Code Activity"
	discordBlurple    = 0x5865F2
)

// BuildNotification renders the fixed-shape activity message.
func BuildNotification(activity model.Activity, at time.Time) model.Notification {
	return model.Notification{
		Title:       notificationTitle,
		Description: fmt.Sprintf("%s completed a task", activity.AgentName),
		Color:       discordBlurple,
		Fields: []model.NotificationField{
			{
				Name:   "⚡ Hook Event",
				Value:  fmt.Sprintf("`%s`", activity.EventName),
				Inline: true,
			},
			{
				Name:   "🤖 Agent",
				Value:  activity.AgentName,
				Inline: true,
			},
			{
				Name:  "📋 Activity",
				Value: fmt.Sprintf("[%s](%s)", activity.Title, activity.URL),
			},
			{
				Name:  "📝 Details",
				Value: fmt.Sprintf("```\n%s\n```", activity.Details),
			},
		},
		Timestamp: at.UTC(),
	}
}
