package stubserver

import (
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/validators"
)

// Handler serves the REST contract over a [Backend].
type Handler struct {
	backend   *Backend
	mode      atomic.Value
	validator validators.Validator

	logger *logger.Logger
}

// NewHandler returns a Handler answering in mode.
func NewHandler(backend *Backend, mode Mode, logger *logger.Logger) *Handler {
	logger.Info().Str("mode", string(mode)).Msg("stub http handler created")
	h := &Handler{
		backend:   backend,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
	h.mode.Store(mode)
	return h
}

// Mode returns the current mode.
func (h *Handler) Mode() Mode {
	return h.mode.Load().(Mode)
}

// SetMode switches the mode for subsequent requests.
func (h *Handler) SetMode(mode Mode) {
	h.mode.Store(mode)
	h.logger.Info().Str("func", "Handler.SetMode").Str("mode", string(mode)).Msg("stub mode switched")
}

// valid checks the named fields of a decoded body and answers 400 when one
// fails.
func (h *Handler) valid(w http.ResponseWriter, r *http.Request, op string, body any, fields ...string) bool {
	if err := h.validator.Validate(r.Context(), body, fields...); err != nil {
		writeBackendError(w, r, op, fmt.Errorf("%w: %w", ErrInvalidData, err))
		return false
	}
	return true
}
