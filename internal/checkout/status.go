package checkout

// Status tracks a checkout through its lifecycle.
type Status string

const (
	StatusInitiated      Status = "INITIATED"
	StatusPaymentPending Status = "PAYMENT_PENDING"
	StatusCompleted      Status = "COMPLETED"
	StatusFailed         Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

var validNext = map[Status]map[Status]bool{
	StatusInitiated:      {StatusPaymentPending: true, StatusFailed: true},
	StatusPaymentPending: {StatusCompleted: true, StatusFailed: true},
	StatusCompleted:      {},
	StatusFailed:         {},
}

func CanTransitionTo(from, to Status) bool {
	return validNext[from][to]
}
