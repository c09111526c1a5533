package checkout

import "errors"

var (
	ErrEmptyCart           = errors.New("cart is empty, nothing to checkout")
	ErrNoCustomer          = errors.New("customer identity is required")
	IllegalTransitionError = errors.New("illegal transition of checkout status")
)
