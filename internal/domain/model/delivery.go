package model

// Outcome classifies a single delivery attempt.
type Outcome int

const (
	OutcomeDelivered Outcome = iota + 1
	OutcomeSkipped
	OutcomeRejected
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelivered:
		return "delivered"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeRejected:
		return "rejected"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Delivery is the result of forwarding one notification.
type Delivery struct {
	Outcome Outcome
	// Reason explains a skip, or carries the HTTP reason phrase for a rejection.
	Reason string

	StatusCode   int
	Body         string
	PayloadBytes int
	Err          error
}

// Delivered reports whether the webhook accepted the notification.
func (d Delivery) Delivered() bool {
	return d.Outcome == OutcomeDelivered
}
