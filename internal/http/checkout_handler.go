package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fjod/go_pos/internal/checkout"
	"github.com/fjod/go_pos/internal/payment"
)

type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type CheckoutRequestDTO struct {
	PaymentMethod string `json:"payment_method"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	customer := getCustomerFromContext(r.Context())
	if customer == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing customer identity")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	method, err := payment.ParseMethod(req.PaymentMethod)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_payment_method", err.Error())
		return
	}

	rec, err := h.service.Checkout(r.Context(), customer, method)
	if err != nil {
		if errors.Is(err, checkout.ErrNoCustomer) {
			respondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
			return
		}
		handleDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, rec)
}
