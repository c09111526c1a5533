package http

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// CustomerMiddleware attaches the customer identity supplied by the
// authentication collaborator. The core treats it as an opaque string;
// handlers reject requests where it is missing.
func CustomerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		customer := r.Header.Get("X-Customer")
		ctx := context.WithValue(r.Context(), "customer", customer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = fmt.Sprintf("req-%d", time.Now().UnixNano())
		}

		ctx := context.WithValue(r.Context(), "request_id", requestID)
		w.Header().Set("X-Request-ID", requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func getCustomerFromContext(ctx context.Context) string {
	if customer, ok := ctx.Value("customer").(string); ok {
		return customer
	}
	return ""
}
