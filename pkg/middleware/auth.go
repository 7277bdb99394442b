package middleware

import (
	"net/http"
	"strings"

	"bus-booking/internal/session"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession gates a route on a valid session token. The Authorization
// header may carry a literal "Bearer " prefix; without one the whole
// header value is treated as the token. Sessions do not expire, so the
// only rejection causes are a missing, empty, or unknown token.
func AuthSession(sessions *session.Store, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			if token == "" {
				utils.ResponseUnauthorized(w, "Invalid token format")
				return
			}

			sess, ok := sessions.Get(token)
			if !ok {
				logger.Warn("Invalid session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), sess.UserID, sess.Email)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
