package server

import (
	"encoding/json"
	"net/http"

	"github.com/barkeep/v1/pkg/errors"
	"go.uber.org/zap"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	appErr := errors.Wrap(err, "request failed")
	if appErr.StatusCode() >= 500 {
		s.logger.Error("Request error",
			zap.String("code", string(appErr.Code)),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Cause))
	}
	s.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr))
}
