package api

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/garnizeh/jobboard/internal/errors"
)

// MsgInternal is the only message callers see for unexpected failures.
const MsgInternal = "Something went wrong! Please try again later."

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, errorResponse{Error: message}, status)
}

// writeDomainError maps err to a status code. Internal failures are logged
// with their stack and answered with a generic message.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		de = apperrors.Internal(MsgInternal, err)
	}

	switch de.Type {
	case apperrors.ErrTypeInvalidInput:
		logger.Debug("rejected request", "path", r.URL.Path, "err", de.Error())
		writeError(w, http.StatusBadRequest, de.Message)
	case apperrors.ErrTypeUnauthorized:
		logger.Debug("unauthorized request", "path", r.URL.Path, "err", de.Error())
		writeError(w, http.StatusUnauthorized, de.Message)
	case apperrors.ErrTypeNotFound:
		writeError(w, http.StatusNotFound, de.Message)
	default:
		logger.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"err", de.Error(),
			"stack", string(de.StackTrace()),
		)
		writeError(w, http.StatusInternalServerError, MsgInternal)
	}
}
