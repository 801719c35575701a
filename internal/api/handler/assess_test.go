package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amoghpatel/careerisk/internal/api/handler"
	"github.com/amoghpatel/careerisk/internal/assess"
	"github.com/amoghpatel/careerisk/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock assessor ---

type mockAssessor struct {
	result  *models.AssessmentResult
	err     error
	lastReq assess.Request
}

func (m *mockAssessor) Assess(_ context.Context, req assess.Request) (*models.AssessmentResult, error) {
	m.lastReq = req
	return m.result, m.err
}

func sampleResult() *models.AssessmentResult {
	return &models.AssessmentResult{
		Person:      models.Subject{Name: "Jane Doe", CurrentCompany: "Acme"},
		Scores:      models.Scores{AIRisk: 85, Overall: 76},
		GeneratedAt: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func postAssess(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/assess", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

// --- tests ---

func TestAssessHandler_Success(t *testing.T) {
	m := &mockAssessor{result: sampleResult()}
	rec := postAssess(t, handler.NewAssessHandler(m),
		`{"name": "Jane Doe", "company": "Acme", "linkedin": "https://www.linkedin.com/in/jane-doe-123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.AssessmentResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Jane Doe", got.Person.Name)
	assert.Equal(t, 76, got.Scores.Overall)

	assert.Equal(t, "https://www.linkedin.com/in/jane-doe-123", m.lastReq.ProfileURL)
	assert.Equal(t, "Acme", m.lastReq.Company)
}

func TestAssessHandler_InvalidJSON(t *testing.T) {
	rec := postAssess(t, handler.NewAssessHandler(&mockAssessor{}), `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestAssessHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
		message  string
	}{
		{"bad request", assess.ErrBadRequest, http.StatusBadRequest, "bad request"},
		{"not found", assess.ErrNotFound, http.StatusNotFound, "person not found"},
		{"internal", context.DeadlineExceeded, http.StatusInternalServerError, "unexpected error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postAssess(t, handler.NewAssessHandler(&mockAssessor{err: tt.err}),
				`{"name": "Jane Doe"}`)
			require.Equal(t, tt.expected, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.message)
		})
	}
}
