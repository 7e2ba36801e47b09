package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/aperrault/phraseur/internal/api/shared"
)

// APIKeyHeader is the header clients present their key in.
const APIKeyHeader = "X-API-Key"

// APIKeyMiddleware guards routes with a shared API key.
type APIKeyMiddleware struct {
	key string
}

// NewAPIKeyMiddleware creates an APIKeyMiddleware checking against the given key.
func NewAPIKeyMiddleware(key string) *APIKeyMiddleware {
	return &APIKeyMiddleware{key: key}
}

// Authenticate rejects requests without the configured API key: 401 when the
// header is missing, 403 when it does not match.
func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get(APIKeyHeader)
		if presented == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "API key required")
			return
		}

		if subtle.ConstantTimeCompare([]byte(presented), []byte(m.key)) != 1 {
			shared.RespondWithError(w, r, http.StatusForbidden, "Invalid API key")
			return
		}

		next.ServeHTTP(w, r)
	})
}
