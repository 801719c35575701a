package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID attaches a fresh request ID to the context and echoes it back in
// the X-Request-Id header so log lines and client reports can be matched up.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(setRequestID(r.Context(), id)))
	})
}
