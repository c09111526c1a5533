package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Method selects how the customer pays.
type Method string

const (
	MethodCash       Method = "CASH"
	MethodCard       Method = "CARD"
	MethodNetBanking Method = "NET_BANKING"
	MethodUPI        Method = "UPI"
)

var ErrUnknownMethod = errors.New("unknown payment method")

// Methods returns the selectable payment methods in menu order.
func Methods() []Method {
	return []Method{MethodCash, MethodCard, MethodNetBanking, MethodUPI}
}

// ParseMethod resolves a user-supplied method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CASH":
		return MethodCash, nil
	case "CARD":
		return MethodCard, nil
	case "NET_BANKING", "NETBANKING", "NET BANKING":
		return MethodNetBanking, nil
	case "UPI":
		return MethodUPI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

func (m Method) String() string {
	return string(m)
}

// Status is the outcome of a charge attempt.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Result reports the outcome of a charge. Reason is set when the charge
// was refused.
type Result struct {
	Status        Status `json:"status"`
	TransactionID string `json:"transaction_id"`
	Reason        string `json:"reason,omitempty"`
}

// Processor charges a grand total against a payment method.
type Processor interface {
	Charge(ctx context.Context, orderID string, amount decimal.Decimal, method Method) (*Result, error)
}

// OutcomeFunc decides whether a simulated charge goes through.
type OutcomeFunc func() (Status, string)

// RandomOutcome succeeds ~95% of the time, otherwise refuses with one of
// the known reasons.
func RandomOutcome() (Status, string) {
	return calcOutcome(rand.Intn(101)) // 101 because Intn is exclusive of the upper bound
}

var refusalReasons = []string{
	"insufficient funds",
	"card expired",
	"issuer declined",
	"network timeout",
	"limit exceeded",
}

func calcOutcome(n int) (Status, string) {
	if n < 95 {
		return StatusSuccess, ""
	}
	reason := n - 95
	if reason == 0 || reason > len(refusalReasons) {
		return StatusFailed, "unknown reason"
	}
	return StatusFailed, refusalReasons[reason-1]
}

// Simulator is an in-process payment collaborator with a pluggable outcome.
type Simulator struct {
	outcome OutcomeFunc
}

// NewSimulator creates a simulator; a nil outcome uses RandomOutcome.
func NewSimulator(outcome OutcomeFunc) *Simulator {
	if outcome == nil {
		outcome = RandomOutcome
	}
	return &Simulator{outcome: outcome}
}

func (s *Simulator) Charge(ctx context.Context, orderID string, amount decimal.Decimal, method Method) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, reason := s.outcome()
	return &Result{
		Status:        status,
		TransactionID: fmt.Sprintf("TXN-%d-%s", time.Now().Unix(), uuid.NewString()),
		Reason:        reason,
	}, nil
}
