package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
)

// BreakerProcessor wraps a Processor with a circuit breaker so a flaky
// payment backend cannot stall checkout.
type BreakerProcessor struct {
	inner Processor
	cb    *gobreaker.CircuitBreaker[*Result]
}

func NewBreakerProcessor(inner Processor) *BreakerProcessor {
	cb := gobreaker.NewCircuitBreaker[*Result](gobreaker.Settings{
		Name:        "payment",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})
	return &BreakerProcessor{inner: inner, cb: cb}
}

func (p *BreakerProcessor) Charge(ctx context.Context, orderID string, amount decimal.Decimal, method Method) (*Result, error) {
	return p.cb.Execute(func() (*Result, error) {
		return p.inner.Charge(ctx, orderID, amount, method)
	})
}
