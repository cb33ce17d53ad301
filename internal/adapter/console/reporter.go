// Package console prints the human-readable progress lines a hook runner
// shows to its user. Structured logs go elsewhere; this is the stdout report.
package console

import (
	"context"
	"fmt"
	"io"

	"hook-notifier/internal/domain/model"
	"hook-notifier/internal/domain/ports"
)

// Reporter writes progress lines to an output stream.
type Reporter struct {
	out io.Writer
}

var _ ports.Reporter = (*Reporter)(nil)

// NewReporter creates a Reporter. A nil writer discards output.
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = io.Discard
	}
	return &Reporter{out: out}
}

// InputFallback notes that stdin could not be used.
func (r *Reporter) InputFallback(_ context.Context, err error) {
	if err == nil {
		fmt.Fprintln(r.out, "Debug: No hook input, using environment")
		return
	}
	fmt.Fprintf(r.out, "Debug: Failed to parse stdin JSON: %v\n", err)
}

// Outcome prints the payload size and the final delivery status.
func (r *Reporter) Outcome(_ context.Context, delivery model.Delivery) {
	if delivery.PayloadBytes > 0 {
		fmt.Fprintf(r.out, "Debug: Payload size: %d bytes\n", delivery.PayloadBytes)
	}

	switch delivery.Outcome {
	case model.OutcomeDelivered:
		fmt.Fprintln(r.out, "✅ Discord notification sent")
	case model.OutcomeSkipped:
		fmt.Fprintln(r.out, delivery.Reason)
	case model.OutcomeRejected:
		if delivery.StatusCode < 400 {
			fmt.Fprintf(r.out, "❌ Discord API returned status: %d\n", delivery.StatusCode)
			return
		}
		fmt.Fprintf(r.out, "❌ HTTP Error: %d - %s\n", delivery.StatusCode, delivery.Reason)
		if delivery.Body != "" {
			fmt.Fprintf(r.out, "Error details: %s\n", delivery.Body)
		}
	case model.OutcomeFailed:
		fmt.Fprintf(r.out, "❌ Error: %v\n", delivery.Err)
	default:
		fmt.Fprintf(r.out, "❌ Error: unknown delivery outcome %d\n", int(delivery.Outcome))
	}
}
