package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/hongminglow/escola-be/internal/auth"
)

// CookieName is the cookie carrying the signed session token.
const CookieName = "escola.sid"

// ErrNoSession means the request is not authenticated.
var ErrNoSession = errors.New("no valid session")

// Manager issues sessions at login and resolves them for the access gate.
type Manager struct {
	store  Store
	tokens *auth.TokenManager
	secure bool
}

// NewManager builds a Manager; secureCookie sets the Secure attribute on issued cookies.
func NewManager(store Store, tokens *auth.TokenManager, secureCookie bool) *Manager {
	return &Manager{store: store, tokens: tokens, secure: secureCookie}
}

// Start creates a session for userID and attaches its cookie to w.
// The cookie has no expiry and there is no logout.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request, userID int64) error {
	id := uuid.NewString()
	token, err := m.tokens.Generate(auth.SessionClaims{SessionID: id, UserID: userID})
	if err != nil {
		return fmt.Errorf("sign session: %w", err)
	}

	if err := m.store.Put(r.Context(), id, Session{UserID: userID, CreatedAt: time.Now().UTC()}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// UserID returns the user bound to the request's session, or ErrNoSession.
func (m *Manager) UserID(r *http.Request) (int64, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return 0, ErrNoSession
	}

	claims, err := m.tokens.Parse(cookie.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNoSession, err)
	}

	s, err := m.store.Get(r.Context(), claims.SessionID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNoSession
		}
		return 0, err
	}
	if s.UserID == 0 || s.UserID != claims.UserID {
		return 0, ErrNoSession
	}
	return s.UserID, nil
}
