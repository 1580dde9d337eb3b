package notify

// DeliveryStatus is the per-recipient outcome of one dispatch.
type DeliveryStatus string

const (
	// StatusDelivered means the transport accepted the message.
	StatusDelivered DeliveryStatus = "delivered"
	// StatusRateLimited means the transport refused for quota reasons; the
	// message body was logged for manual follow-up and the recipient still
	// counts as processed.
	StatusRateLimited DeliveryStatus = "rate_limited"
	// StatusFailed means a hard delivery failure.
	StatusFailed DeliveryStatus = "failed"
)

// RecipientOutcome is the dispatch outcome for one recipient.
type RecipientOutcome struct {
	Phone  string
	Status DeliveryStatus
}

// Result summarizes one fan-out.
type Result struct {
	Outcomes []RecipientOutcome
}

// Processed counts recipients that were delivered or rate-limited.
func (r Result) Processed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusDelivered || o.Status == StatusRateLimited {
			n++
		}
	}
	return n
}

// Failed counts hard delivery failures.
func (r Result) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == StatusFailed {
			n++
		}
	}
	return n
}
