package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"business-recommender/internal/common/database"
	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/logger"
	"business-recommender/internal/common/validation"
	"business-recommender/internal/engine"
	"business-recommender/internal/models"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 64 << 10

// Recommender is satisfied by *recommendation.Service.
type Recommender interface {
	Recommend(ctx context.Context, profile models.UserProfile, rawAlgorithm string) (*models.RecommendationResponse, error)
	ModelInfo(rawAlgorithm string) (models.ModelInfo, error)
}

// MentorContacter is satisfied by *mentorcontact.Service.
type MentorContacter interface {
	Contact(ctx context.Context, req models.ContactRequest) (*models.ContactResult, error)
}

type handlers struct {
	recommender Recommender
	contacter   MentorContacter
	checks      map[string]database.Pinger
	logger      logger.Logger
}

func (h *handlers) recommend(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	profile, err := validation.DecodeProfile(raw)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	resp, err := h.recommender.Recommend(r.Context(), profile, r.URL.Query().Get("algorithm"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) modelInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.recommender.ModelInfo(r.URL.Query().Get("algorithm"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"templates": engine.CatalogTemplates(),
	})
}

func (h *handlers) contactMentor(w http.ResponseWriter, r *http.Request) {
	raw, err := decodeBody(w, r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	raw["mentorId"] = chi.URLParam(r, "mentorId")

	req, err := validation.DecodeContactRequest(raw)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.contacter.Contact(r.Context(), req)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

func (h *handlers) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	checks, ok := database.CheckAll(ctx, h.checks)
	status, code := "ready", http.StatusOK
	if !ok {
		status, code = "not ready", http.StatusServiceUnavailable
	}
	writeJSON(w, code, map[string]interface{}{
		"status": status,
		"checks": checks,
		"time":   time.Now().Format(time.RFC3339),
	})
}

// decodeBody reads a JSON object. Malformed bodies are validation failures.
func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&raw); err != nil {
		return nil, apperrors.NewValidationFailedError("request body must be a JSON object", []string{"(root): " + err.Error()})
	}
	if raw == nil {
		return nil, apperrors.NewValidationFailedError("request body must be a JSON object", nil)
	}
	return raw, nil
}
