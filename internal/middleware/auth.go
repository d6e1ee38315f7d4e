package middleware

import (
	"context"
	"net/http"

	"github.com/zenathia/zenathia-web/internal/model"
	"github.com/zenathia/zenathia-web/internal/session"
)

type contextKey string

const sessionUserKey contextKey = "sessionUser"

// WithSession reconstructs the session principal from the request
// cookie, when present, and stores it in the request context. Requests
// without a valid session pass through anonymously.
func WithSession(sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, ok := sessions.Read(r); ok {
				r = r.WithContext(context.WithValue(r.Context(), sessionUserKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireSession redirects anonymous requests to the registration page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := SessionUserFromContext(r.Context()); !ok {
			http.Redirect(w, r, "/registration", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionUserFromContext extracts the authenticated principal from the
// request context.
func SessionUserFromContext(ctx context.Context) (model.SessionUser, bool) {
	user, ok := ctx.Value(sessionUserKey).(model.SessionUser)
	return user, ok
}
