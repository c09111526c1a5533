package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/fjod/go_pos/internal/cache"
	"github.com/fjod/go_pos/internal/cart"
	"github.com/fjod/go_pos/internal/catalog"
	"github.com/fjod/go_pos/internal/pricing"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	ledger *cart.Ledger
	rates  pricing.Rates
	store  catalog.Store
	cache  cache.CatalogCache
}

func NewCartHandler(ledger *cart.Ledger, rates pricing.Rates, store catalog.Store, listingCache cache.CatalogCache) *CartHandler {
	return &CartHandler{ledger: ledger, rates: rates, store: store, cache: listingCache}
}

type AddItemRequestDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type CartLineDTO struct {
	Index     int    `json:"index"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`
	BOGO      bool   `json:"bogo"`
}

type CartResponseDTO struct {
	Lines      []CartLineDTO `json:"lines"`
	Subtotal   string        `json:"subtotal"`
	Discount   string        `json:"discount"`
	Tax        string        `json:"tax"`
	GrandTotal string        `json:"grand_total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	if getCustomerFromContext(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	respondJSON(w, http.StatusOK, h.cartView())
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if getCustomerFromContext(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_name", "name must not be empty")
		return
	}
	if req.Quantity <= 0 || req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be between 1 and 99")
		return
	}

	line, err := h.ledger.AddItem(req.Name, req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	h.invalidateListing(r.Context(), line.Name)

	respondJSON(w, http.StatusCreated, h.cartView())
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if getCustomerFromContext(r.Context()) == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_index", "index must be an integer")
		return
	}

	lines := h.ledger.Lines()
	if err := h.ledger.RemoveItem(index); err != nil {
		handleDomainError(w, err)
		return
	}
	if index < len(lines) {
		h.invalidateListing(r.Context(), lines[index].Name)
	}

	respondJSON(w, http.StatusOK, h.cartView())
}

// invalidateListing drops the cached listings a stock change makes stale:
// the item's own category and the "All" view.
func (h *CartHandler) invalidateListing(ctx context.Context, name string) {
	if h.cache == nil {
		return
	}

	categories := []catalog.Category{catalog.CategoryAll}
	if item, err := h.store.FindByName(name); err == nil {
		categories = append(categories, item.Category)
	}
	for _, category := range categories {
		if err := h.cache.Delete(ctx, category); err != nil {
			log.Printf("cache delete error for %s: %v", category, err)
		}
	}
}

func (h *CartHandler) cartView() CartResponseDTO {
	lines := h.ledger.Lines()
	totals := h.rates.ComputeTotals(lines)

	dto := CartResponseDTO{
		Lines:      make([]CartLineDTO, 0, len(lines)),
		Subtotal:   totals.Subtotal.StringFixed(2),
		Discount:   totals.Discount.StringFixed(2),
		Tax:        totals.Tax.StringFixed(2),
		GrandTotal: totals.GrandTotal.StringFixed(2),
	}
	for i, line := range lines {
		dto.Lines = append(dto.Lines, CartLineDTO{
			Index:     i,
			Name:      line.Name,
			Qty:       line.Qty,
			UnitPrice: line.UnitPrice.StringFixed(2),
			LineTotal: pricing.LineTotal(line).StringFixed(2),
			BOGO:      line.BOGO,
		})
	}
	return dto
}
