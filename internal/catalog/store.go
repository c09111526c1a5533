package catalog

import (
	"errors"
	"fmt"
	"iter"
)

// Common errors returned by the store
var (
	ErrNotFound        = errors.New("item not found")
	ErrDuplicateItem   = errors.New("item with this name already exists")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrInvalidItem     = errors.New("invalid item")
)

// InsufficientStockError is returned when a reservation asks for more
// units than are currently on the shelf. It carries the available count
// so callers can report it.
type InsufficientStockError struct {
	Name      string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d", e.Name, e.Requested, e.Available)
}

// Store defines the interface for catalog storage operations
type Store interface {
	// Add registers a new item. The name must be unique (case-insensitive).
	Add(item Item) error

	// FindByName returns the item with the given name, matched case-insensitively.
	FindByName(name string) (Item, error)

	// Reserve decrements stock by qty, failing without side effects if
	// qty is not positive or exceeds the available stock.
	Reserve(name string, qty int) error

	// Release returns qty units to stock, undoing a prior reservation.
	// An unknown name is a logged no-op.
	Release(name string, qty int)

	// ListByCategory yields items in the category (or all items for
	// CategoryAll) in catalog insertion order. The sequence is
	// restartable; each range sees a fresh snapshot.
	ListByCategory(category Category) iter.Seq[Item]
}
