package middleware

import (
	"net/http"
	"strings"

	"github.com/weiminglau/family-tree-be/internal/auth"
	"github.com/weiminglau/family-tree-be/internal/http/respond"
)

const bearerPrefix = "Bearer "

// RequireAuth verifies the bearer token on each request and injects the
// decoded claims into the request context. The decision tree is linear so
// every path produces exactly one response: missing header or wrong scheme
// is rejected as "no token", a failed verification as "token failed".
func RequireAuth(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, no token provided.")
				return
			}

			claims, err := tokens.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "Not authorized, token failed.")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.NewContext(r.Context(), claims)))
		})
	}
}
