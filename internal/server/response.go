package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/sutticue/flashcard-game/internal/round"
)

var errBadRequest = errors.New("invalid request body")

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

// statusFor maps round and registry errors to HTTP status codes.
func statusFor(err error) (int, string) {
	var invalid *round.InvalidInputError
	switch {
	case errors.Is(err, errRoundNotFound):
		return http.StatusNotFound, "ROUND_NOT_FOUND"
	case errors.As(err, &invalid), errors.Is(err, errBadRequest):
		return http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, round.ErrLocked):
		return http.StatusConflict, "ALREADY_ANSWERED"
	case errors.Is(err, round.ErrRoundComplete):
		return http.StatusConflict, "ROUND_COMPLETE"
	case errors.Is(err, round.ErrSkipDisabled):
		return http.StatusConflict, "SKIP_DISABLED"
	case errors.Is(err, round.ErrNotInProgress):
		return http.StatusConflict, "NOT_IN_PROGRESS"
	}
	return http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"
}

func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	code, name := statusFor(err)
	msg := err.Error()
	var invalid *round.InvalidInputError
	if errors.As(err, &invalid) {
		// The API counts options from zero.
		msg = fmt.Sprintf("index %d out of range: choose 0-%d", invalid.Index, invalid.Options-1)
	}
	if code == http.StatusInternalServerError {
		s.log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		msg = "internal server error"
	}
	respondJSON(w, code, errorResponse{Error: errorDetail{Code: name, Message: msg}})
}

func respondJSON(w http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"could not encode response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}

func decodeJSONBody(r *http.Request, dst any) error {
	if r.Body == nil {
		return errBadRequest
	}
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errBadRequest
	}
	return nil
}
