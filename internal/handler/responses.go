package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/FightBet_Go/internal/domain"
	"github.com/osse101/FightBet_Go/internal/logger"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	// Status carries the no_fight sentinel on active fight lookups
	Status string `json:"status,omitempty"`
}

// bufferPool is a pool of bytes.Buffer to reduce allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode first so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"InternalError","message":"Something went wrong"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// RespondError sends a JSON error response with a stable kind
func RespondError(w http.ResponseWriter, status int, kind, message string) {
	respondJSON(w, status, ErrorResponse{Error: kind, Message: message})
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgStoreError         = "Server error occurred. Please try again."
	ErrMsgLaunchError        = "The fight process could not be started."
	ErrMsgNoActiveFight      = "There is no active fight."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status, stable kind and
// a message safe to show callers. Store details never reach the response.
func mapServiceErrorToUserMessage(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidSide):
		return http.StatusBadRequest, domain.KindInvalidSide, domain.ErrMsgInvalidSide
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, domain.KindInvalidAmount, domain.ErrMsgInvalidAmount
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden, domain.KindUnauthorized, domain.ErrMsgUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, domain.KindNotFound, domain.ErrMsgNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, domain.KindInvalidTransition, domain.ErrMsgInvalidTransition
	case errors.Is(err, domain.ErrBettingClosed):
		return http.StatusConflict, domain.KindBettingClosed, domain.ErrMsgBettingClosed
	case errors.Is(err, domain.ErrNotCompleted):
		return http.StatusConflict, domain.KindNotCompleted, domain.ErrMsgNotCompleted
	case errors.Is(err, domain.ErrNoWinner):
		return http.StatusConflict, domain.KindNoWinner, domain.ErrMsgNoWinner
	case errors.Is(err, domain.ErrLaunch):
		return http.StatusBadGateway, domain.KindLaunchError, ErrMsgLaunchError
	case errors.Is(err, domain.ErrStore):
		return http.StatusInternalServerError, domain.KindStoreError, ErrMsgStoreError
	default:
		return http.StatusInternalServerError, KindInternal, ErrMsgGenericServerError
	}
}

// respondServiceError logs err and writes the mapped error response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, kind, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err, "kind", kind)
	} else {
		log.Info(opName+" rejected", "error", err, "kind", kind)
	}
	RespondError(w, status, kind, msg)
}
