package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID assigns a UUID to each request that arrives without one and
// echoes it back in the response, so log lines and error payloads can be
// correlated with client reports.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
