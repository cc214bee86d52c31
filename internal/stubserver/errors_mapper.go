package stubserver

import (
	"errors"
	"net/http"

	"github.com/fahim1105/seu-matrimony/internal/app"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/utils"
)

// writeBackendError maps a Backend error to the backend's error response.
func writeBackendError(w http.ResponseWriter, r *http.Request, op string, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, ErrInvalidData):
		utils.WriteError(w, http.StatusBadRequest, app.MsgInvalidDataProvided, "")
	case errors.Is(err, ErrRequestExists):
		utils.WriteError(w, http.StatusBadRequest, app.MsgRequestAlreadyExists, app.CodeRequestAlreadyExists)
	case errors.Is(err, ErrBiodataNotFound):
		utils.WriteError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrUserExists):
		utils.WriteError(w, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrDomainRestricted):
		utils.WriteError(w, http.StatusForbidden, app.MsgDomainRestricted, app.CodeDomainRestricted)
	case errors.Is(err, ErrRequestNotFound):
		utils.WriteError(w, http.StatusNotFound, app.MsgRequestNotFound, "")
	case errors.Is(err, ErrUserNotFound):
		utils.WriteError(w, http.StatusNotFound, app.MsgUserNotFound, "")
	default:
		log.Err(err).Str("func", op).Msg("unexpected backend error")
		utils.WriteError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), "")
		return
	}

	log.Debug().Err(err).Str("func", op).Msg("request refused")
}
