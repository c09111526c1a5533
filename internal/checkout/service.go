package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/payment"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/fjod/go_pos/internal/receipt"
	r "github.com/fjod/go_pos/internal/repository"
	"github.com/google/uuid"
)

// Order is the snapshot produced by a checkout; only Status changes
// after creation, and only through advance.
type Order struct {
	ID        string         `json:"id"`
	Customer  string         `json:"customer"`
	Method    payment.Method `json:"payment_method"`
	Lines     []cart.Line    `json:"lines"`
	Totals    pricing.Totals `json:"totals"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (o *Order) advance(to Status) error {
	if !CanTransitionTo(o.Status, to) {
		return IllegalTransitionError
	}
	o.Status = to
	return nil
}

// Service finalizes the open cart into an order: it prices the lines,
// builds the receipt, persists the order with its outbox event, charges
// the payment collaborator and clears the ledger.
type Service struct {
	ledger  *cart.Ledger
	rates   pricing.Rates
	repo    r.RepoInterface
	charger payment.Processor
}

func NewService(ledger *cart.Ledger, rates pricing.Rates, repo r.RepoInterface, charger payment.Processor) *Service {
	return &Service{
		ledger:  ledger,
		rates:   rates,
		repo:    repo,
		charger: charger,
	}
}

// Checkout finalizes the current cart for the given customer. The charge
// is fire-and-forget: a refused or failed payment is logged but does not
// undo the completed sale.
func (s *Service) Checkout(ctx context.Context, customer string, method payment.Method) (*receipt.Receipt, error) {
	if customer == "" {
		return nil, ErrNoCustomer
	}

	lines := s.ledger.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	totals := s.rates.ComputeTotals(lines)
	order := &Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Method:    method,
		Lines:     lines,
		Totals:    totals,
		Status:    StatusInitiated,
		CreatedAt: time.Now(),
	}
	rec := receipt.Build(order.ID, customer, order.CreatedAt, lines, totals)

	record, err := toRecord(order, rec)
	if err != nil {
		return nil, err
	}
	if err := s.repo.SaveOrder(ctx, record); err != nil {
		if errAdvance := order.advance(StatusFailed); errAdvance != nil {
			log.Printf("order %s: %v", order.ID, errAdvance)
		}
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := order.advance(StatusPaymentPending); err != nil {
		return nil, err
	}
	s.charge(ctx, order)

	if err := order.advance(StatusCompleted); err != nil {
		return nil, err
	}
	s.ledger.Clear()

	return &rec, nil
}

func (s *Service) charge(ctx context.Context, order *Order) {
	result, err := s.charger.Charge(ctx, order.ID, order.Totals.GrandTotal, order.Method)
	if err != nil {
		log.Printf("payment charge error for order %s: %v", order.ID, err)
		return
	}
	if result.Status != payment.StatusSuccess {
		log.Printf("payment refused for order %s (%s): %s", order.ID, order.Method, result.Reason)
		return
	}
	log.Printf("payment of %s via %s confirmed for order %s (txn %s)",
		order.Totals.GrandTotal.StringFixed(2), order.Method, order.ID, result.TransactionID)
}

func toRecord(order *Order, rec receipt.Receipt) (*r.Order, error) {
	receiptJSON, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}

	items := make([]r.OrderItem, 0, len(rec.Rows))
	for _, row := range rec.Rows {
		items = append(items, r.OrderItem{
			Name:      row.Name,
			Qty:       row.Qty,
			PaidQty:   row.PaidQty,
			UnitPrice: row.UnitPrice.String(),
			LineTotal: row.LineTotal.String(),
			BOGO:      row.BOGO,
		})
	}

	return &r.Order{
		ID:          order.ID,
		Customer:    order.Customer,
		Method:      order.Method.String(),
		Subtotal:    order.Totals.Subtotal.String(),
		Discount:    order.Totals.Discount.String(),
		Tax:         order.Totals.Tax.String(),
		GrandTotal:  order.Totals.GrandTotal.String(),
		ReceiptJSON: receiptJSON,
		CreatedAt:   order.CreatedAt,
		Items:       items,
	}, nil
}
