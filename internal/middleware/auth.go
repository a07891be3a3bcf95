package middleware

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hongminglow/escola-be/internal/session"
)

// AccessDeniedMessage is sent to unauthenticated requests for protected routes.
const AccessDeniedMessage = "Acesso negado. Faça login para continuar."

// SessionResolver maps a request to the id of its logged-in user.
type SessionResolver interface {
	UserID(r *http.Request) (int64, error)
}

// RequireSession only forwards requests that carry a live session.
func RequireSession(sessions SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := sessions.UserID(r)
			if err != nil {
				if errors.Is(err, session.ErrNoSession) {
					http.Error(w, AccessDeniedMessage, http.StatusUnauthorized)
					return
				}
				log.Err(err).Str("path", r.URL.Path).Msg("session lookup failed")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			if userID == 0 {
				http.Error(w, AccessDeniedMessage, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
