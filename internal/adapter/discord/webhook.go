package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
)

const (
	botUsername  = "Claude Code Bot"
	userAgent    = "Claude-Code-Discord-Bot/1.0"
	maxErrorBody = 2048
)

// Webhook is a Discord webhook notifier.
type Webhook struct {
	webhookURL string
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Discord webhook notifier.
func NewWebhook(webhookURL string, timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		webhookURL: strings.TrimSpace(webhookURL),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Send posts the notification to Discord once and classifies the result.
func (w *Webhook) Send(ctx context.Context, notification model.Notification) model.Delivery {
	if w.webhookURL == "" {
		return model.Delivery{Outcome: model.OutcomeSkipped, Reason: "No Discord webhook configured"}
	}

	body, err := json.Marshal(buildPayload(notification))
	if err != nil {
		return model.Delivery{Outcome: model.OutcomeFailed, Err: fmt.Errorf("marshal payload: %w", err)}
	}
	w.logger.Debug(ctx, "discord payload prepared", "bytes", len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(body))
	if err != nil {
		return model.Delivery{Outcome: model.OutcomeFailed, PayloadBytes: len(body), Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		w.logger.Error(ctx, "discord webhook request failed", "error", err)
		return model.Delivery{Outcome: model.OutcomeFailed, PayloadBytes: len(body), Err: fmt.Errorf("perform request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		w.logger.Info(ctx, "notification sent to discord", "status", resp.StatusCode)
		return model.Delivery{Outcome: model.OutcomeDelivered, StatusCode: resp.StatusCode, PayloadBytes: len(body)}
	}

	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := responseText(resp.Header.Get("Content-Type"), data)
	w.logger.Warn(ctx, "discord webhook rejected notification", "status", resp.StatusCode, "body", detail)
	return model.Delivery{
		Outcome:      model.OutcomeRejected,
		StatusCode:   resp.StatusCode,
		Reason:       http.StatusText(resp.StatusCode),
		Body:         detail,
		PayloadBytes: len(body),
		Err:          fmt.Errorf("discord webhook returned status %d", resp.StatusCode),
	}
}

func buildPayload(notification model.Notification) map[string]any {
	timestamp := notification.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	return map[string]any{
		"username": botUsername,
		"embeds": []map[string]any{
			{
				"title":       truncate(notification.Title, 256),
				"description": truncate(notification.Description, 4096),
				"color":       notification.Color,
				"fields":      convertFields(notification.Fields),
				"timestamp":   timestamp.UTC().Format(time.RFC3339),
			},
		},
	}
}

func convertFields(fields []model.NotificationField) []map[string]any {
	if len(fields) == 0 {
		return nil
	}

	result := make([]map[string]any, 0, len(fields))
	for _, field := range fields {
		entry := map[string]any{
			"name":  truncate(field.Name, 256),
			"value": truncateFieldValue(field.Value, 1024),
		}
		if field.Inline {
			entry["inline"] = true
		}
		result = append(result, entry)
	}

	return result
}

const (
	codeFenceOpen  = "```\n"
	codeFenceClose = "\n```"
)

// truncateFieldValue cuts inside a fenced code block so the fence stays closed.
func truncateFieldValue(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	inner, ok := strings.CutPrefix(value, codeFenceOpen)
	if !ok || !strings.HasSuffix(inner, codeFenceClose) {
		return truncate(value, limit)
	}
	inner = strings.TrimSuffix(inner, codeFenceClose)
	return codeFenceOpen + truncate(inner, limit-len(codeFenceOpen)-len(codeFenceClose)) + codeFenceClose
}

func truncate(value string, limit int) string {
	if utf8.RuneCountInString(value) <= limit {
		return value
	}
	runes := []rune(value)
	return strings.TrimSpace(string(runes[:limit-3])) + "..."
}
