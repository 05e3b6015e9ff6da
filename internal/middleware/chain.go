package middleware

import "net/http"

// Middleware wraps a handler with request-scoped behaviour.
type Middleware func(http.Handler) http.Handler

// Chain wraps h so the middlewares run in the order given: the first one
// sees the request first and the response last.
//
//	handler := Chain(mux,
//	    SecurityHeaders,       // Executes first
//	    RequestLogging,        // Executes second
//	    MaxBodyBytes(1 << 20), // Executes third
//	)
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
