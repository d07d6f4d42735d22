package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/oluwaseyi-a/DocuQuery/internal/api/respond"
)

// BearerAuth enforces the process-wide static bearer token. It runs before
// validation and the pipeline; a missing header, a missing "Bearer " prefix
// or a token mismatch all end the request with 401.
func BearerAuth(token string) func(http.Handler) http.Handler {
	expected := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				respond.Error(w, http.StatusUnauthorized, "unauthorized", "missing or invalid token", nil)
				return
			}

			presented := []byte(strings.TrimPrefix(auth, "Bearer "))
			if subtle.ConstantTimeCompare(presented, expected) != 1 {
				respond.Error(w, http.StatusUnauthorized, "unauthorized", "invalid token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
