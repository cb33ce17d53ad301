package console

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hook-notifier/internal/domain/model"
)

func TestReporterOutcomeLines(t *testing.T) {
	tests := []struct {
		name     string
		delivery model.Delivery
		want     string
	}{
		{
			name:     "delivered",
			delivery: model.Delivery{Outcome: model.OutcomeDelivered, StatusCode: 204, PayloadBytes: 512},
			want:     "Debug: Payload size: 512 bytes\n✅ Discord notification sent\n",
		},
		{
			name:     "skipped",
			delivery: model.Delivery{Outcome: model.OutcomeSkipped, Reason: "No Discord webhook configured"},
			want:     "No Discord webhook configured\n",
		},
		{
			name: "rejected with body",
			delivery: model.Delivery{
				Outcome:      model.OutcomeRejected,
				StatusCode:   404,
				Reason:       "Not Found",
				Body:         `{"message": "Unknown Webhook"}`,
				PayloadBytes: 300,
			},
			want: "Debug: Payload size: 300 bytes\n❌ HTTP Error: 404 - Not Found\nError details: {\"message\": \"Unknown Webhook\"}\n",
		},
		{
			name:     "rejected success class",
			delivery: model.Delivery{Outcome: model.OutcomeRejected, StatusCode: 201, Reason: "Created"},
			want:     "❌ Discord API returned status: 201\n",
		},
		{
			name:     "failed",
			delivery: model.Delivery{Outcome: model.OutcomeFailed, Err: errors.New("perform request: dial tcp: connection refused")},
			want:     "❌ Error: perform request: dial tcp: connection refused\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewReporter(&buf).Outcome(context.Background(), tc.delivery)
			if buf.String() != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, buf.String())
			}
		})
	}
}

func TestReporterInputFallback(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(&buf)
	reporter.InputFallback(context.Background(), errors.New("unexpected end of JSON input"))
	reporter.InputFallback(context.Background(), nil)

	want := "Debug: Failed to parse stdin JSON: unexpected end of JSON input\nDebug: No hook input, using environment\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestNilWriterDiscards(t *testing.T) {
	NewReporter(nil).Outcome(context.Background(), model.Delivery{Outcome: model.OutcomeDelivered})
}
