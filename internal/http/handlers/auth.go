package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hongminglow/escola-be/internal/http/respond"
	"github.com/hongminglow/escola-be/internal/models/dto"
	"github.com/hongminglow/escola-be/internal/service"
	"github.com/hongminglow/escola-be/internal/session"
)

const (
	msgLoginOK          = "Login bem-sucedido"
	msgLoginFailed      = "CPF ou senha incorretos"
	msgLoginServerError = "Erro no servidor"
	msgInvalidPayload   = "Dados inválidos"
)

// AuthHandler owns the login endpoint.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *session.Manager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(auth *service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /login", h.handleLogin)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeBody(w, r, &req, loginFromForm(&req)); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	user, err := h.auth.Login(r.Context(), req.IdentityNumber, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthentication) {
			respond.Error(w, http.StatusBadRequest, msgLoginFailed)
			return
		}
		log.Err(err).Msg("login failed")
		respond.Error(w, http.StatusInternalServerError, msgLoginServerError)
		return
	}

	if err := h.sessions.Start(w, r, user.ID); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("start session failed")
		respond.Error(w, http.StatusInternalServerError, msgLoginServerError)
		return
	}

	log.Info().Int64("user_id", user.ID).Msg("user logged in")
	respond.JSON(w, http.StatusOK, msgLoginOK, nil)
}
