// Package handler holds the HTTP handlers for the careerisk API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amoghpatel/careerisk/internal/api/response"
	"github.com/amoghpatel/careerisk/internal/assess"
	"github.com/amoghpatel/careerisk/pkg/models"
)

// Assessor defines the interface the handler depends on.
type Assessor interface {
	Assess(ctx context.Context, req assess.Request) (*models.AssessmentResult, error)
}

// NewAssessHandler returns the handler for POST /assess.
func NewAssessHandler(svc Assessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name     string `json:"name"`
			Company  string `json:"company"`
			LinkedIn string `json:"linkedin"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "invalid JSON body")
			return
		}

		result, err := svc.Assess(r.Context(), assess.Request{
			Name:       req.Name,
			Company:    req.Company,
			ProfileURL: req.LinkedIn,
		})
		if err != nil {
			switch {
			case errors.Is(err, assess.ErrBadRequest):
				response.Error(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, assess.ErrNotFound):
				response.Error(w, http.StatusNotFound, "person not found")
			default:
				response.Error(w, http.StatusInternalServerError, "an unexpected error occurred")
			}
			return
		}

		response.JSON(w, result)
	}
}
