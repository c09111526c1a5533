package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/fjod/go_pos/internal/catalog"
	"github.com/shopspring/decimal"
)

var ErrIndexOutOfRange = errors.New("cart line index out of range")

// Line is one cart entry. UnitPrice and BOGO are snapshotted from the
// catalog at add time, so later catalog changes do not affect an open cart.
type Line struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	BOGO      bool            `json:"bogo"`
	AddedAt   time.Time       `json:"added_at"`
}

// Stock is the slice of the catalog the ledger needs.
type Stock interface {
	FindByName(name string) (catalog.Item, error)
	Reserve(name string, qty int) error
	Release(name string, qty int)
}

// Ledger owns the current customer's cart lines and is the only component
// that reserves or releases stock against the catalog.
type Ledger struct {
	mu    sync.Mutex
	stock Stock
	lines []Line
}

func NewLedger(stock Stock) *Ledger {
	return &Ledger{stock: stock}
}

// AddItem reserves qty units of the named item and appends a line for it.
// Reservation and append are atomic as a pair: on any failure no line is
// added and no stock is held.
func (l *Ledger) AddItem(name string, qty int) (Line, error) {
	if qty <= 0 {
		return Line{}, catalog.ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, err := l.stock.FindByName(name)
	if err != nil {
		return Line{}, err
	}
	if err := l.stock.Reserve(item.Name, qty); err != nil {
		return Line{}, err
	}

	line := Line{
		Name:      item.Name,
		Qty:       qty,
		UnitPrice: item.Price,
		BOGO:      item.BOGO,
		AddedAt:   time.Now(),
	}
	l.lines = append(l.lines, line)
	return line, nil
}

// RemoveItem deletes the line at index, releasing its reservation back to
// the catalog. Remaining lines keep their order.
func (l *Ledger) RemoveItem(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.lines) {
		return ErrIndexOutOfRange
	}

	line := l.lines[index]
	l.stock.Release(line.Name, line.Qty)
	l.lines = append(l.lines[:index], l.lines[index+1:]...)
	return nil
}

// Clear empties the cart without releasing stock. Used after checkout,
// where the sale already consumed the reservations.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = nil
}

// Lines returns a read-only snapshot of the cart in insertion order.
func (l *Ledger) Lines() []Line {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of open lines.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines)
}
