package api

import (
	"encoding/json"
	"net/http"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
)

type errorBody struct {
	Error *apperrors.StandardError `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps err onto its HTTP status. Server-side failures are logged.
func writeError(w http.ResponseWriter, r *http.Request, fallback logger.Logger, err error) {
	stdErr := apperrors.AsStandardError(err)
	status := apperrors.HTTPStatus(stdErr.Code)
	if status >= http.StatusInternalServerError {
		logger.FromContext(r.Context(), fallback).Error("request failed", map[string]interface{}{
			"code":  stdErr.Code,
			"error": err,
		})
	}
	writeJSON(w, status, errorBody{Error: stdErr})
}
