package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hongminglow/escola-be/internal/http/respond"
	"github.com/hongminglow/escola-be/internal/models/dto"
	"github.com/hongminglow/escola-be/internal/service"
)

const (
	msgUserCreated      = "Usuário cadastrado com sucesso!"
	msgUserDuplicate    = "CPF já cadastrado."
	msgUserServerError  = "Erro ao cadastrar usuário."
	msgPasswordRejected = "Senha inválida."
	msgClassCreated     = "Turma cadastrada com sucesso!"
	msgClassDuplicate   = "Turma já cadastrada."
	msgClassServerError = "Erro ao cadastrar turma."
)

// RegistrationHandler owns user and class sign-up.
type RegistrationHandler struct {
	svc        *service.RegistrationService
	classGuard func(http.Handler) http.Handler
}

// NewRegistrationHandler constructs the handler. classGuard, when non-nil,
// wraps the class sign-up endpoint.
func NewRegistrationHandler(svc *service.RegistrationService, classGuard func(http.Handler) http.Handler) *RegistrationHandler {
	return &RegistrationHandler{svc: svc, classGuard: classGuard}
}

// Register attaches registration routes to the mux.
func (h *RegistrationHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /cadastro", h.handleRegisterUser)

	var class http.Handler = http.HandlerFunc(h.handleRegisterClass)
	if h.classGuard != nil {
		class = h.classGuard(class)
	}
	mux.Handle("POST /cadastro-turma", class)
}

func (h *RegistrationHandler) handleRegisterUser(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeBody(w, r, &req, registerFromForm(&req)); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	created, err := h.svc.RegisterUser(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateEntity):
			respond.Error(w, http.StatusBadRequest, msgUserDuplicate)
		case errors.Is(err, service.ErrInvalidInput):
			respond.Error(w, http.StatusBadRequest, msgPasswordRejected)
		default:
			log.Err(err).Msg("register user failed")
			respond.Error(w, http.StatusInternalServerError, msgUserServerError)
		}
		return
	}

	log.Info().Int64("user_id", created.ID).Msg("user registered")
	respond.JSON(w, http.StatusOK, msgUserCreated, nil)
}

func (h *RegistrationHandler) handleRegisterClass(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterClassRequest
	if err := decodeBody(w, r, &req, classFromForm(&req)); err != nil {
		respond.Error(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	created, err := h.svc.RegisterClass(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEntity) {
			respond.Error(w, http.StatusBadRequest, msgClassDuplicate)
			return
		}
		log.Err(err).Msg("register class failed")
		respond.Error(w, http.StatusInternalServerError, msgClassServerError)
		return
	}

	log.Info().Int64("class_id", created.ID).Str("code", created.Code).Msg("class registered")
	respond.JSON(w, http.StatusOK, msgClassCreated, nil)
}
