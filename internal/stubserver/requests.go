package stubserver

import (
	"encoding/json"
	"net/http"

	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/fahim1105/seu-matrimony/internal/validators"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) sendRequest(w http.ResponseWriter, r *http.Request) {
	var in models.PendingRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBackendError(w, r, "Handler.sendRequest", ErrInvalidData)
		return
	}
	if !h.valid(w, r, "Handler.sendRequest", in, validators.FieldSenderEmail, validators.FieldReceiverEmail, validators.FieldStatus) {
		return
	}

	h.storeRequest(w, r, "Handler.sendRequest", in)
}

func (h *Handler) sendRequestByBiodata(w http.ResponseWriter, r *http.Request) {
	h.sendResolved(w, r, "Handler.sendRequestByBiodata", validators.FieldBiodataID, func(in models.PendingRequestInput) (string, error) {
		return h.backend.ResolveBiodata(in.ReceiverBiodataID)
	})
}

func (h *Handler) sendRequestByObjectID(w http.ResponseWriter, r *http.Request) {
	h.sendResolved(w, r, "Handler.sendRequestByObjectID", validators.FieldObjectID, func(in models.PendingRequestInput) (string, error) {
		return h.backend.ResolveObjectID(in.ReceiverObjectID)
	})
}

func (h *Handler) sendResolved(w http.ResponseWriter, r *http.Request, op, idField string, resolve func(models.PendingRequestInput) (string, error)) {
	var in models.PendingRequestInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeBackendError(w, r, op, ErrInvalidData)
		return
	}
	if !h.valid(w, r, op, in, validators.FieldSenderEmail, idField, validators.FieldStatus) {
		return
	}

	receiver, err := resolve(in)
	if err != nil {
		writeBackendError(w, r, op, err)
		return
	}
	in.ReceiverEmail = receiver

	h.storeRequest(w, r, op, in)
}

func (h *Handler) storeRequest(w http.ResponseWriter, r *http.Request, op string, in models.PendingRequestInput) {
	stored, err := h.backend.SendRequest(in)
	if err != nil {
		writeBackendError(w, r, op, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ServerSendResponse{
		Success:    true,
		Message:    "connection request sent",
		InsertedID: stored.ID,
	}, http.StatusOK)
}

func (h *Handler) requestStatus(w http.ResponseWriter, r *http.Request) {
	status := h.backend.RequestStatus(chi.URLParam(r, "sender"), chi.URLParam(r, "receiver"))
	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) cancelRequest(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.CancelRequest(chi.URLParam(r, "id")); err != nil {
		writeBackendError(w, r, "Handler.cancelRequest", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.ServerMessage{Success: true, Message: "connection request cancelled"}, http.StatusOK)
}

func (h *Handler) setMode(w http.ResponseWriter, r *http.Request) {
	mode, err := ParseMode(chi.URLParam(r, "mode"))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	h.SetMode(mode)
	_, _ = utils.WriteJSON(w, map[string]string{"mode": string(mode)}, http.StatusOK)
}
