package catalog

import (
	"fmt"
	"iter"
	"log"
	"strings"
	"sync"
)

// MemoryStore implements Store with in-memory storage. The check-and-decrement
// in Reserve happens under a single lock hold, so a shared catalog serving
// several carts cannot oversubscribe stock.
type MemoryStore struct {
	mu       sync.RWMutex
	items    []*Item          // insertion order, for listing
	index    map[string]*Item // lowercase name -> item
	capacity map[string]int   // lowercase name -> stock registered at Add
}

// NewMemoryStore creates an empty in-memory catalog
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		index:    make(map[string]*Item),
		capacity: make(map[string]int),
	}
}

// Add registers a new item in the catalog
func (s *MemoryStore) Add(item Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidItem)
	}
	if item.Price.IsNegative() {
		return fmt.Errorf("%w: negative price", ErrInvalidItem)
	}
	if item.Stock < 0 {
		return fmt.Errorf("%w: negative stock", ErrInvalidItem)
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidItem, item.Category)
	}
	if item.Variant.Kind == "" {
		item.Variant = Standard()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(item.Name)
	if _, exists := s.index[key]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateItem, item.Name)
	}

	stored := item
	s.items = append(s.items, &stored)
	s.index[key] = &stored
	s.capacity[key] = stored.Stock
	return nil
}

// FindByName returns a copy of the item, matched case-insensitively
func (s *MemoryStore) FindByName(name string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.index[strings.ToLower(name)]
	if !exists {
		return Item{}, ErrNotFound
	}
	return *item, nil
}

// Reserve decrements stock by qty. Check and decrement happen under one
// lock hold; on any failure stock is left untouched.
func (s *MemoryStore) Reserve(name string, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.index[strings.ToLower(name)]
	if !exists {
		return ErrNotFound
	}
	if item.Stock < qty {
		return &InsufficientStockError{Name: item.Name, Requested: qty, Available: item.Stock}
	}

	item.Stock -= qty
	return nil
}

// Release returns qty units to stock. Releasing an unknown name or a
// non-positive qty is reported as a warning, not an error: the caller
// already gave the goods back, there is nothing to recover.
func (s *MemoryStore) Release(name string, qty int) {
	if qty <= 0 {
		log.Printf("release of non-positive qty %d for %q ignored", qty, name)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(name)
	item, exists := s.index[key]
	if !exists {
		log.Printf("release for unknown item %q ignored", name)
		return
	}

	// never inflate stock past what was registered at Add
	if limit := s.capacity[key]; item.Stock+qty > limit {
		log.Printf("release of %d for %q exceeds registered stock %d, clamping", qty, item.Name, limit)
		item.Stock = limit
		return
	}
	item.Stock += qty
}

// ListByCategory yields item snapshots in insertion order. Each range over
// the sequence takes a fresh snapshot, so it is restartable and safe to
// hold across catalog mutations.
func (s *MemoryStore) ListByCategory(category Category) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range s.snapshot() {
			if category == CategoryAll || item.Category == category {
				if !yield(item) {
					return
				}
			}
		}
	}
}

func (s *MemoryStore) snapshot() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, *item)
	}
	return out
}
