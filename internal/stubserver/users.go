package stubserver

import (
	"encoding/json"
	"net/http"

	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/fahim1105/seu-matrimony/internal/validators"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) userInfo(w http.ResponseWriter, r *http.Request) {
	user, err := h.backend.User(chi.URLParam(r, "email"))
	if err != nil {
		writeBackendError(w, r, "Handler.userInfo", err)
		return
	}

	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) browseMatches(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.backend.Matches(chi.URLParam(r, "email")), http.StatusOK)
}

func (h *Handler) allBiodata(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.backend.Matches(r.URL.Query().Get("exclude")), http.StatusOK)
}

func (h *Handler) sendVerificationEmail(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBackendError(w, r, "Handler.sendVerificationEmail", ErrInvalidData)
		return
	}
	if !h.valid(w, r, "Handler.sendVerificationEmail", in, validators.FieldEmail) {
		return
	}

	_, _ = utils.WriteJSON(w, models.ServerMessage{Success: true, Message: "verification email sent"}, http.StatusOK)
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBackendError(w, r, "Handler.registerUser", ErrInvalidData)
		return
	}
	if !h.valid(w, r, "Handler.registerUser", in, validators.FieldEmail) {
		return
	}

	if _, err := h.backend.Register(in); err != nil {
		writeBackendError(w, r, "Handler.registerUser", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ServerMessage{Success: true, Message: "user registered"}, http.StatusOK)
}

func (h *Handler) completeRegistration(w http.ResponseWriter, r *http.Request) {
	var in models.RegistrationInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBackendError(w, r, "Handler.completeRegistration", ErrInvalidData)
		return
	}
	if !h.valid(w, r, "Handler.completeRegistration", in, validators.FieldEmail) {
		return
	}

	if err := h.backend.CompleteRegistration(in); err != nil {
		writeBackendError(w, r, "Handler.completeRegistration", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ServerMessage{Success: true, Message: "registration completed"}, http.StatusOK)
}
