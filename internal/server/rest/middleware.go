package rest

import (
	"net/http"
	"strings"

	"github.com/taskhub/taskhub/internal/common"
	"github.com/taskhub/taskhub/internal/server/auth"
)

// authorize guards every route under a protected prefix. It extracts the
// bearer token, verifies signature and expiry, and attaches the decoded
// identity to the request context. Any failure short-circuits with 401
// and one generic message; the handler is never invoked.
func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		if header == "" || !strings.HasPrefix(header, common.BearerPrefix) {
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		token := strings.TrimPrefix(header, common.BearerPrefix)
		id, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Debug(r.Context(), "token rejected", "reason", err.Error())
			writeError(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), id)))
	})
}
