package middleware

import (
	"log"
	"net/http"
)

// CORSDebugMiddleware traces origin negotiation. It is only wired into the
// chain when CORS_DEBUG is set while diagnosing a deployment, never in
// normal operation.
func CORSDebugMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("[CORS Debug] %s %s from Origin: %s", r.Method, r.URL.Path, r.Header.Get("Origin"))
		log.Printf("[CORS Debug] Request Headers: %v", r.Header)

		next.ServeHTTP(w, r)

		log.Printf("[CORS Debug] Response Headers: %v", w.Header())
	})
}
