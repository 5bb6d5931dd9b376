package middleware

import (
	"context"
	"net/http"

	"hockey-union/backend/internal/domain/user"
)

type ctxKey string

const sessionKey ctxKey = "session"

// RequireSession guards routes that mutate club data: the store's
// current-user singleton must hold a session. The session is injected into
// the request context for handlers that care who is acting.
func RequireSession(users *user.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := users.Current(r.Context())
			if s == nil {
				http.Error(w, "login required", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session injected by RequireSession.
func GetSession(ctx context.Context) (*user.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*user.Session)
	return s, ok
}
